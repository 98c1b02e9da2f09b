package session

import "github.com/llehouerou/practicehard/internal/player"

// Dispatch routes an engine event to its handler. Events for media other
// than the one currently loaded are dropped.
func (s *Session) Dispatch(ev player.Event) {
	if ev.Path != "" && ev.Path != s.loadedPath() {
		return
	}
	switch ev.Kind {
	case player.DurationChanged:
		s.OnEngineDuration(durationMs(ev.Value))
	case player.PositionChanged:
		s.OnEnginePosition(durationMs(ev.Value))
	case player.EndOfMedia:
		s.OnEndOfMedia()
	case player.LoadCompleted:
		s.OnLoadCompleted()
	}
}

func (s *Session) loadedPath() string {
	if s.asset != nil {
		return s.asset.Path
	}
	return s.source
}

// OnEnginePosition handles a periodic position report (slice-relative).
func (s *Session) OnEnginePosition(ms int) {
	if s.mode == Scrubbing {
		return
	}
	if s.suppress > 0 {
		s.suppress--
		return
	}
	s.display = s.tl.ToFull(ms)
}

// OnEngineDuration records the loaded media's duration. Only the original
// track's duration becomes the full duration; a slice never overwrites it.
func (s *Session) OnEngineDuration(ms int) {
	s.assetDuration = ms
	if _, sliced := s.tl.Active(); sliced {
		return
	}
	if ms > 0 {
		s.fullDuration = ms
	}
}

// OnEndOfMedia replays from the start. Looped slices repeat natively and
// normally never get here.
func (s *Session) OnEndOfMedia() {
	if s.mode == Idle {
		return
	}
	s.engine.SetPosition(0)
	s.engine.Play()
	s.playing = true
	s.display = s.tl.ToFull(0)
}

// OnLoadCompleted resumes playback if a slice swap interrupted it.
func (s *Session) OnLoadCompleted() {
	if !s.resumeAfterLoad {
		return
	}
	s.resumeAfterLoad = false
	s.engine.Play()
	s.playing = true
}

// Tick refreshes the displayed position from the engine.
func (s *Session) Tick() {
	if s.mode == Idle || s.mode == Scrubbing || s.suppress > 0 || s.fullDuration <= 0 {
		return
	}
	s.display = s.tl.ToFull(durationMs(s.engine.Position()))
}
