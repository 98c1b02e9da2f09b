package player

import "time"

// Interface is the playback engine contract the session drives.
type Interface interface {
	// Load replaces the current media. The engine ends up Stopped at
	// position zero and emits DurationChanged then LoadCompleted.
	Load(path string) error
	Play()
	Pause()
	Stop()
	State() State
	Loaded() bool
	Path() string

	Position() time.Duration
	Duration() time.Duration
	SetPosition(pos time.Duration)

	// SetRate sets the playback rate, 1.0 being normal speed.
	SetRate(ratio float64)
	// SetVolume sets the output volume in percent (0-100).
	SetVolume(percent int)
	// SetLooping enables native repeat-one for media loaded afterwards.
	SetLooping(loop bool)

	Events() <-chan Event
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
