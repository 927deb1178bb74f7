package events

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultOptions []Option
	defaultOptMu   sync.Mutex
)

// Option configures an Emitter.
type Option func(*Emitter)

// PanicHandler is called when a handler panics during Trigger.
// Receives the signal being dispatched and the recovered panic value.
// The panic is re-raised after the handler returns.
type PanicHandler func(signal Signal, recovered any)

// Configure sets options for the default Emitter.
// Must be called before any module-level functions (On, Off, Once, Trigger).
// Subsequent calls have no effect once the default instance is created.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOptions = opts
	defaultOptMu.Unlock()
}

// WithReceiver sets the receiver bound to callbacks registered without one.
// Defaults to the Emitter itself.
func WithReceiver(receiver any) Option {
	return func(e *Emitter) {
		e.receiver = receiver
		e.hasReceiver = true
	}
}

// WithLogger sets the logger used for debug tracing of registrations and dispatch.
// Default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Emitter) {
		e.logger = &logger
	}
}

// WithPanicHandler sets a callback to be invoked when a handler panics.
// The handler observes the panic; it does not stop it from reaching the Trigger caller.
func WithPanicHandler(handler PanicHandler) Option {
	return func(e *Emitter) {
		e.panicHandler = handler
	}
}
