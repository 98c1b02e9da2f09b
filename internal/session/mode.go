package session

// Mode is the session playback mode.
type Mode int

const (
	// Idle means no track has been loaded yet.
	Idle Mode = iota
	// FullTrack plays the original file; slice and full positions coincide.
	FullTrack
	// SlicedLoop plays a materialized slice with native repeat.
	SlicedLoop
	// Scrubbing is active while the user drags the seek control.
	Scrubbing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case FullTrack:
		return "full track"
	case SlicedLoop:
		return "loop"
	case Scrubbing:
		return "scrubbing"
	default:
		return "unknown"
	}
}
