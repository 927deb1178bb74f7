package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArg(t *testing.T) {
	e := &Event{Args: []any{"title", 42}}

	s, ok := Arg[string](e, 0)
	assert.True(t, ok)
	assert.Equal(t, "title", s)

	n, ok := Arg[int](e, 1)
	assert.True(t, ok)
	assert.Equal(t, 42, n)
}

func TestArgMismatch(t *testing.T) {
	e := &Event{Args: []any{"title"}}

	_, ok := Arg[int](e, 0)
	assert.False(t, ok, "wrong type")

	_, ok = Arg[string](e, 1)
	assert.False(t, ok, "out of range")

	_, ok = Arg[string](e, -1)
	assert.False(t, ok, "negative index")

	_, ok = Arg[string](nil, 0)
	assert.False(t, ok, "nil event")
}

func TestReceiverAs(t *testing.T) {
	m := &model{title: "draft"}
	e := &Event{Receiver: m}

	got, ok := ReceiverAs[*model](e)
	assert.True(t, ok)
	assert.Same(t, m, got)

	_, ok = ReceiverAs[string](e)
	assert.False(t, ok)

	_, ok = ReceiverAs[*model](nil)
	assert.False(t, ok)
}

func TestEventEmitter(t *testing.T) {
	e := New()
	var got *Emitter

	e.On("event", Do(func(ev *Event) {
		got = ev.Emitter
	}), "custom receiver")
	e.Trigger("event")

	assert.Same(t, e, got)
}

func TestDoAlwaysSucceeds(t *testing.T) {
	e := New()
	e.On("event", Do(func(_ *Event) {}))
	assert.True(t, e.Trigger("event"))
}
