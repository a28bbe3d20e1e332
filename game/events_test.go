package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventsFlush(t *testing.T) {
	e := newEvents()
	var order []string
	e.Emit(Event{Kind: EventCollected, Index: 3})
	e.Emit(Event{Kind: EventWon})
	assert.Equal(t, 2, e.Len())

	out := e.Flush([]func(Event){
		func(ev Event) { order = append(order, "a:"+ev.Kind.String()) },
		func(ev Event) { order = append(order, "b:"+ev.Kind.String()) },
	})

	assert.Equal(t, []string{"a:collected", "b:collected", "a:won", "b:won"}, order)
	assert.Len(t, out, 2)
	assert.Equal(t, 3, out[0].Index)
	assert.Zero(t, e.Len())
	assert.Nil(t, e.Flush(nil))
}

func TestFlushedEventsSurviveNextFrame(t *testing.T) {
	e := newEvents()
	e.Emit(Event{Kind: EventCaptured, Chaser: "red"})
	out := e.Flush(nil)

	e.Emit(Event{Kind: EventWon})
	e.Flush(nil)

	assert.Equal(t, EventCaptured, out[0].Kind)
	assert.Equal(t, "red", out[0].Chaser)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "level-complete", EventLevelComplete.String())
	assert.Equal(t, "EventKind(9)", EventKind(9).String())
}
