package solver

import "github.com/jacksmith/maze/internal/model"

// EventKind identifies a search transition.
type EventKind string

const (
	EventAdvance  EventKind = "advance"
	EventRetreat  EventKind = "retreat"
	EventFound    EventKind = "found"
	EventNotFound EventKind = "not_found"
)

// Event describes one transition of the search loop.
// For EventAdvance and EventRetreat, From and To are the cursor before and
// after the step. For terminal events From and To are both the final cursor.
type Event struct {
	Kind  EventKind
	Move  model.Move // zero for terminal events
	From  model.Point
	To    model.Point
	Depth int // history length after the step
}

// Tracer observes search transitions. It must not modify the grids.
type Tracer interface {
	OnStep(e Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(e Event)

// OnStep calls f(e).
func (f TracerFunc) OnStep(e Event) { f(e) }
