package player

import "time"

// EventKind identifies an engine notification.
type EventKind int

const (
	// DurationChanged carries the duration of the loaded media.
	DurationChanged EventKind = iota
	// PositionChanged is emitted periodically while playing.
	PositionChanged
	// EndOfMedia is emitted once when non-looping media runs out.
	EndOfMedia
	// LoadCompleted is emitted after Load has swapped the media in.
	LoadCompleted
)

func (k EventKind) String() string {
	switch k {
	case DurationChanged:
		return "DurationChanged"
	case PositionChanged:
		return "PositionChanged"
	case EndOfMedia:
		return "EndOfMedia"
	case LoadCompleted:
		return "LoadCompleted"
	default:
		return "Unknown"
	}
}

// Event is a notification from the engine. Value holds the duration for
// DurationChanged and the position for PositionChanged.
type Event struct {
	Kind  EventKind
	Value time.Duration
	Path  string
}

const (
	eventBuffer = 256
	// positionBacklog is the queue depth above which position updates are
	// dropped, leaving room for the events that matter.
	positionBacklog = 8
)

// emit sends without blocking. Position updates are also dropped when the
// consumer is behind; the periodic UI refresh re-reads the position anyway.
func emit(ch chan Event, ev Event) {
	if ev.Kind == PositionChanged && len(ch) > positionBacklog {
		return
	}
	select {
	case ch <- ev:
	default:
	}
}
