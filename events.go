package colorific

// EventSink is the interface for optional event forwarding. When set on a
// Board, settle, turn and game-over events are published to it, e.g. to an
// ECS world (see the ecs submodule).
type EventSink interface {
	EmitEvent(event BoardEvent)
}

// BoardEventType identifies a kind of board event.
type BoardEventType uint8

const (
	EventSettled      BoardEventType = iota // all cells came to rest and bonus colors were drawn
	EventTurnResolved                       // a click cleared a group
	EventFinished                           // no turns left; the board is terminal
)

// String returns the event type name.
func (t BoardEventType) String() string {
	switch t {
	case EventSettled:
		return "settled"
	case EventTurnResolved:
		return "turn_resolved"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// BoardEvent carries a snapshot of the board counters at the time of the
// event. Turn is only meaningful for EventTurnResolved.
type BoardEvent struct {
	Type           BoardEventType
	Score          int
	HighScore      int
	TurnsRemaining int
	Turn           TurnResult
}
