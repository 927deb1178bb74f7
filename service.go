package events

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultEmitter *Emitter
	defaultOnce    sync.Once
	nopLogger      = zerolog.Nop()
)

// Emitter is a registry of named-event listeners.
// The zero value is ready to use, so Emitter can be embedded in any type.
type Emitter struct {
	registry     map[Signal][]*listener
	mu           sync.Mutex
	receiver     any
	hasReceiver  bool
	logger       *zerolog.Logger
	panicHandler PanicHandler
}

// New creates a new Emitter with optional configuration.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		registry: make(map[Signal][]*listener),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultInstance returns the default Emitter, creating it if necessary.
func defaultInstance() *Emitter {
	defaultOnce.Do(func() {
		defaultOptMu.Lock()
		opts := defaultOptions
		defaultOptMu.Unlock()
		defaultEmitter = New(opts...)
	})
	return defaultEmitter
}

// Signals splits a space-separated list of event names into its signals, in order.
func Signals(names string) []Signal {
	fields := strings.Fields(names)
	signals := make([]Signal, 0, len(fields))
	for _, f := range fields {
		signals = append(signals, Signal(f))
	}
	return signals
}

// log returns the configured logger, or a disabled one.
func (e *Emitter) log() *zerolog.Logger {
	if e.logger == nil {
		return &nopLogger
	}
	return e.logger
}

// defaultReceiver is bound to callbacks registered without an explicit receiver.
func (e *Emitter) defaultReceiver() any {
	if e.hasReceiver {
		return e.receiver
	}
	return e
}

// On registers a callback for the given signals on the default instance.
func On(names string, cb *Callback, receiver ...any) *Emitter {
	return defaultInstance().On(names, cb, receiver...)
}

// On registers cb for each space-separated name in names.
// The first receiver, if given, is bound to the callback; otherwise the emitter's
// default receiver is used. A nil callback is ignored.
// Returns the emitter for chaining.
func (e *Emitter) On(names string, cb *Callback, receiver ...any) *Emitter {
	e.register(names, cb, false, receiver)
	return e
}

// Once registers a callback that fires at most once on the default instance.
func Once(names string, cb *Callback, receiver ...any) *Emitter {
	return defaultInstance().Once(names, cb, receiver...)
}

// Once registers cb like On, but each registration is removed just before its
// first invocation.
func (e *Emitter) Once(names string, cb *Callback, receiver ...any) *Emitter {
	e.register(names, cb, true, receiver)
	return e
}

func (e *Emitter) register(names string, cb *Callback, once bool, receiver []any) {
	if cb == nil {
		return
	}

	bound := e.defaultReceiver()
	if len(receiver) > 0 {
		bound = receiver[0]
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.registry == nil {
		e.registry = make(map[Signal][]*listener)
	}

	for _, signal := range Signals(names) {
		e.registry[signal] = append(e.registry[signal], &listener{
			callback: cb,
			receiver: bound,
			once:     once,
		})
		e.log().Debug().
			Str("signal", string(signal)).
			Bool("once", once).
			Int("listeners", len(e.registry[signal])).
			Msg("Listener registered")
	}
}

// Off removes callbacks from the default instance.
func Off(names string, cb *Callback, receiver ...any) *Emitter {
	return defaultInstance().Off(names, cb, receiver...)
}

// Off removes listeners matching the given filters.
//
// An empty names with a nil callback and no receiver clears every listener.
// Otherwise names restricts removal to those signals (empty means all signals),
// cb restricts it to that callback, and the first receiver, if given, restricts it
// to listeners bound to that receiver. Removing nothing is not an error.
// Returns the emitter for chaining.
func (e *Emitter) Off(names string, cb *Callback, receiver ...any) *Emitter {
	var bound any
	hasReceiver := len(receiver) > 0
	if hasReceiver {
		bound = receiver[0]
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	signals := Signals(names)
	if len(signals) == 0 && cb == nil && !hasReceiver {
		e.registry = nil
		e.log().Debug().Msg("Registry cleared")
		return e
	}

	if len(signals) == 0 {
		for signal := range e.registry {
			signals = append(signals, signal)
		}
	}

	for _, signal := range signals {
		listeners, exists := e.registry[signal]
		if !exists {
			continue
		}

		// Build a new slice so an in-flight snapshot is never mutated.
		kept := make([]*listener, 0, len(listeners))
		for _, l := range listeners {
			if !l.matches(cb, bound, hasReceiver) {
				kept = append(kept, l)
			}
		}

		if len(kept) == 0 {
			delete(e.registry, signal)
		} else {
			e.registry[signal] = kept
		}

		e.log().Debug().
			Str("signal", string(signal)).
			Int("removed", len(listeners)-len(kept)).
			Msg("Listeners removed")
	}

	return e
}

// Clear removes every listener for every signal.
func (e *Emitter) Clear() *Emitter {
	return e.Off("", nil)
}

// claim marks a once listener as fired and removes it from the registry.
// Returns false if the listener already fired, e.g. from a nested Trigger.
func (e *Emitter) claim(signal Signal, target *listener) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if target.fired {
		return false
	}
	target.fired = true
	e.unregisterLocked(signal, target)
	return true
}

// unregisterLocked removes a single listener record, preserving the order of the rest.
// Must be called while holding e.mu.
func (e *Emitter) unregisterLocked(signal Signal, target *listener) {
	listeners := e.registry[signal]
	for i, l := range listeners {
		if l == target {
			kept := make([]*listener, 0, len(listeners)-1)
			kept = append(kept, listeners[:i]...)
			kept = append(kept, listeners[i+1:]...)
			if len(kept) == 0 {
				delete(e.registry, signal)
			} else {
				e.registry[signal] = kept
			}
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for a single signal.
func (e *Emitter) ListenerCount(signal Signal) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.registry[signal])
}

// Stats returns a snapshot of the registry's listener counts.
func (e *Emitter) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats := Stats{
		Signals:        len(e.registry),
		ListenerCounts: make(map[Signal]int, len(e.registry)),
	}

	for signal, listeners := range e.registry {
		stats.ListenerCounts[signal] = len(listeners)
	}

	return stats
}
