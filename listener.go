package events

// listener is one registration of a callback under a signal.
type listener struct {
	callback *Callback
	receiver any
	once     bool
	fired    bool // guarded by Emitter.mu; once listeners only
}

// matches reports whether the listener satisfies an Off filter.
// A nil callback matches any callback; receiver is only compared when hasReceiver is set.
func (l *listener) matches(cb *Callback, receiver any, hasReceiver bool) bool {
	if cb != nil && l.callback != cb {
		return false
	}
	if hasReceiver && !sameReceiver(l.receiver, receiver) {
		return false
	}
	return true
}

// sameReceiver compares receivers by identity, treating uncomparable values as distinct.
func sameReceiver(a, b any) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
