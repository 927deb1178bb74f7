// Package events provides synchronous, in-process named-event dispatch for Go.
//
// At its core, events offers three operations: On registers a callback for one or
// more signals, Off removes callbacks, and Trigger dispatches a signal to every
// registered callback on the calling goroutine. Once is derived from On and fires
// a callback at most one time.
//
// Any type gains these operations by embedding Emitter; the zero value is ready
// to use.
//
// Quick example:
//
//	type Model struct {
//	    events.Emitter
//	}
//
//	m := &Model{}
//	changed := events.Do(func(e *events.Event) {
//	    name, _ := events.Arg[string](e, 0)
//	    // React to change...
//	})
//
//	m.On("change save", changed)
//	m.Trigger("change", "title")
//	m.Off("change", changed)
//
// Several signals may be named in one call by separating them with spaces.
// Trigger("a b") behaves exactly like Trigger("a") followed by Trigger("b").
package events

// Signal is a single event name used to route a trigger to its listeners.
type Signal string

// Handler is the function invoked for a triggered signal.
// Returning false marks the dispatch as failed; Trigger reports the logical AND
// of every handler result.
type Handler func(*Event) bool

// Callback is a registered handler with a stable identity.
// Off matches callbacks by pointer, so keep the value returned by NewCallback or
// Do if the callback needs to be removed later.
type Callback struct {
	handler Handler
}

// NewCallback wraps a handler so it can be passed to On, Once, and Off.
// A nil handler yields a nil Callback, which On treats as a no-op.
func NewCallback(handler Handler) *Callback {
	if handler == nil {
		return nil
	}
	return &Callback{handler: handler}
}

// Do wraps a handler that has no result. The callback always counts as a success.
func Do(fn func(*Event)) *Callback {
	if fn == nil {
		return nil
	}
	return &Callback{handler: func(e *Event) bool {
		fn(e)
		return true
	}}
}

// Stats provides a point-in-time view of an Emitter's registry.
type Stats struct {
	// Signals is the number of signals with at least one listener.
	Signals int

	// ListenerCounts maps each signal to the number of registered listeners.
	ListenerCounts map[Signal]int
}
