package events

// Trigger dispatches on the default instance.
func Trigger(names string, args ...any) bool {
	return defaultInstance().Trigger(names, args...)
}

// Trigger dispatches each space-separated name in names, left to right, passing args
// to every listener. Each name is dispatched as if by its own Trigger call, so a
// listener added for a later name by an earlier one will fire.
//
// Returns false if any invoked handler returned false. A name with no listeners
// succeeds. Handler panics propagate to the caller.
func (e *Emitter) Trigger(names string, args ...any) bool {
	ok := true
	for _, signal := range Signals(names) {
		if !e.dispatch(signal, args) {
			ok = false
		}
	}
	return ok
}

// dispatch invokes every listener registered for signal at the time of the call.
func (e *Emitter) dispatch(signal Signal, args []any) bool {
	// Copy listener slice while holding lock; handlers may re-enter the emitter
	e.mu.Lock()
	listeners := make([]*listener, len(e.registry[signal]))
	copy(listeners, e.registry[signal])
	e.mu.Unlock()

	ok := true
	for _, l := range listeners {
		if l.once && !e.claim(signal, l) {
			continue
		}
		if !e.invoke(signal, l, args) {
			ok = false
		}
	}

	e.log().Debug().
		Str("signal", string(signal)).
		Int("listeners", len(listeners)).
		Bool("result", ok).
		Msg("Signal dispatched")

	return ok
}

// invoke calls a single listener's handler.
func (e *Emitter) invoke(signal Signal, l *listener, args []any) bool {
	if e.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				e.panicHandler(signal, r)
				panic(r)
			}
		}()
	}

	return l.callback.handler(&Event{
		Signal:   signal,
		Receiver: l.receiver,
		Args:     args,
		Emitter:  e,
	})
}
