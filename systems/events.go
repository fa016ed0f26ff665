package systems

import "github.com/pthm-cable/snake/components"

// EventKind identifies a simulation notification.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventScored
	EventDied
	EventFoodPlaced
	EventFoodRemoved
	EventFoodUnavailable
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventScored:
		return "scored"
	case EventDied:
		return "died"
	case EventFoodPlaced:
		return "food_placed"
	case EventFoodRemoved:
		return "food_removed"
	case EventFoodUnavailable:
		return "food_unavailable"
	}
	return "unknown"
}

// Event is emitted by the mover and food spawner as state changes.
type Event struct {
	Kind EventKind
	Tick uint64

	// Cell depends on Kind: the new head for Moved, the appended tail
	// segment for Scored, the rejected candidate for Died, and the food
	// cell for the food events.
	Cell components.Cell

	Score int
	Cause components.DeathCause
}

// EventSink receives simulation events synchronously.
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ev Event)

// HandleEvent calls f.
func (f EventSinkFunc) HandleEvent(ev Event) { f(ev) }

type nopSink struct{}

func (nopSink) HandleEvent(Event) {}
