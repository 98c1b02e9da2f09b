package player

// State is the engine transport state.
//
// Loading media always lands in Stopped with the position at zero; the
// media stays loaded until the next Load or Close.
//
//	          Load
//	   ┌─────────────────┐
//	   ▼                 │
//	┌──────────┐  Play   ┌──────────┐
//	│ Stopped  │────────▶│ Playing  │
//	└──────────┘         └──────────┘
//	   ▲  ▲   Stop          │    ▲
//	   │  └─────────────────┤    │ Play
//	   │ Stop        Pause  ▼    │
//	   │             ┌──────────┐
//	   └─────────────│  Paused  │
//	                 └──────────┘
//
// Play on a Stopped engine without media is ignored. Stop rewinds to zero.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if Play would start or resume playback.
func (s State) CanPlay() bool {
	return s != Playing
}
