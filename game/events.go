package game

import "fmt"

// EventKind identifies what happened during a frame.
type EventKind uint8

const (
	EventCollected EventKind = iota
	EventTeleported
	EventLevelComplete
	EventCaptured
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventTeleported:
		return "teleported"
	case EventLevelComplete:
		return "level-complete"
	case EventCaptured:
		return "captured"
	case EventWon:
		return "won"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is a notification produced by a frame. Chaser is set for captures,
// Zone for teleports and level completion, Index for collections.
type Event struct {
	Kind   EventKind
	Frame  uint64
	Chaser string
	Zone   string
	Index  int
}

// Events buffers notifications raised while systems run. They are delivered
// once every system of the frame has executed.
type Events struct {
	pending []Event
}

func newEvents() *Events {
	return &Events{}
}

// Emit queues an event for delivery at the end of the frame.
func (e *Events) Emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// Len returns the number of queued events.
func (e *Events) Len() int {
	return len(e.pending)
}

// Flush delivers queued events to every subscriber in order and returns the
// delivered events. The buffer is reset.
func (e *Events) Flush(subscribers []func(Event)) []Event {
	var out []Event
	if len(e.pending) > 0 {
		out = make([]Event, len(e.pending))
		copy(out, e.pending)
	}

	for _, ev := range out {
		for _, fn := range subscribers {
			fn(ev)
		}
	}

	e.pending = e.pending[:0]
	return out
}
