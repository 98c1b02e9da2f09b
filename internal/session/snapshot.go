package session

import (
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/timeline"
)

// Snapshot is a read-only copy of what the UI needs to render.
type Snapshot struct {
	Mode             Mode
	Source           string
	Position         int
	Duration         int
	Playing          bool
	TransportEnabled bool
	Slice            timeline.Range
	Sliced           bool
	Markers          timeline.Markers
	ShowMarkers      bool
	Speed            int
	Volume           int
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	r, sliced := s.tl.Active()
	m, show := s.LoopMarkers()
	return Snapshot{
		Mode:             s.mode,
		Source:           s.source,
		Position:         s.display,
		Duration:         s.fullDuration,
		Playing:          s.playing,
		TransportEnabled: s.TransportEnabled(),
		Slice:            r,
		Sliced:           sliced,
		Markers:          m,
		ShowMarkers:      show,
		Speed:            s.speed,
		Volume:           s.volume,
	}
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Source() string { return s.source }

// DisplayPosition is the full-track position shown to the user.
func (s *Session) DisplayPosition() int { return s.display }

// FullDuration is the original track's duration, 0 until known.
func (s *Session) FullDuration() int { return s.fullDuration }

// AssetDuration is the duration of whatever the engine has loaded.
func (s *Session) AssetDuration() int { return s.assetDuration }

func (s *Session) Playing() bool { return s.playing }

func (s *Session) Speed() int { return s.speed }

func (s *Session) Volume() int { return s.volume }

// TransportEnabled reports whether seeking and skipping are possible.
func (s *Session) TransportEnabled() bool {
	return s.mode != Idle && s.fullDuration > 0
}

// Slice returns the active loop range.
func (s *Session) Slice() (timeline.Range, bool) {
	return s.tl.Active()
}

// LoopMarkers projects the active loop onto the full timeline.
func (s *Session) LoopMarkers() (timeline.Markers, bool) {
	r, active := s.tl.Active()
	return timeline.Project(r, active, s.fullDuration)
}

// TimeLabel renders "position / duration".
func (s *Session) TimeLabel() string {
	return timecode.Format(s.display) + " / " + timecode.Format(s.fullDuration)
}

// ToFull converts a slice-relative position to full-track time.
func (s *Session) ToFull(ms int) int { return s.tl.ToFull(ms) }

// ToSlice converts a full-track position to slice-relative time.
func (s *Session) ToSlice(ms int) int { return s.tl.ToSlice(ms) }
