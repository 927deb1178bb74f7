package events

// Event describes a single handler invocation.
type Event struct {
	// Signal is the event name being dispatched.
	Signal Signal

	// Receiver is the value bound at registration, or the emitter's default.
	Receiver any

	// Args are the trailing arguments passed to Trigger.
	Args []any

	// Emitter is the registry performing the dispatch.
	Emitter *Emitter
}

// Arg returns the i-th trigger argument as T.
// Returns the zero value and false if the index is out of range or the type does not match.
func Arg[T any](e *Event, i int) (T, bool) {
	var zero T
	if e == nil || i < 0 || i >= len(e.Args) {
		return zero, false
	}
	v, ok := e.Args[i].(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// ReceiverAs returns the event's receiver as T.
func ReceiverAs[T any](e *Event) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	v, ok := e.Receiver.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
