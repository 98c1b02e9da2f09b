// Package session coordinates the playback engine, slice materialization and
// timeline translation for one practice session.
//
// A Session is not safe for concurrent use. Engine events are delivered to
// it through Dispatch on the same goroutine that issues commands.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/slice"
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/timeline"
)

var (
	// ErrNoMedia is returned by operations that need a loaded track.
	ErrNoMedia = errors.New("no track loaded")
	// ErrScrubbing is returned when the range changes during a drag.
	ErrScrubbing = errors.New("seek in progress")
)

// suppressAfterSeek is how many engine position reports are ignored after
// a programmatic seek, so stale pre-seek positions do not snap the display
// back.
const suppressAfterSeek = 2

// Slicer materializes a range of a source file.
type Slicer interface {
	Materialize(source string, r timeline.Range) (*slice.Asset, error)
	Cleanup() error
}

// Session owns the engine handle and every piece of playback state.
type Session struct {
	engine player.Interface
	slicer Slicer
	logger zerolog.Logger

	source string
	mode   Mode
	tl     timeline.Translator
	asset  *slice.Asset

	fullDuration  int
	assetDuration int
	display       int
	playing       bool

	suppress        int
	resumeAfterLoad bool

	// scrub state
	scrubFrom    Mode
	scrubPlaying bool

	speed  int
	volume int
}

// New creates an idle session.
func New(engine player.Interface, slicer Slicer, logger zerolog.Logger) *Session {
	return &Session{
		engine: engine,
		slicer: slicer,
		logger: logger.With().Str("component", "session").Logger(),
		mode:   Idle,
		speed:  100,
		volume: 100,
	}
}

// Load replaces the source track. The full duration, and with it the
// transport, becomes available once the engine reports it.
func (s *Session) Load(path string) error {
	if s.mode == Scrubbing {
		s.mode = s.scrubFrom
	}
	s.engine.Stop()
	s.engine.SetLooping(false)
	if err := s.engine.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	s.source = path
	s.mode = FullTrack
	s.tl.Clear()
	s.asset = nil
	s.fullDuration = 0
	s.assetDuration = 0
	s.display = 0
	s.playing = false
	s.suppress = 0
	s.resumeAfterLoad = false
	s.applyRate()

	s.logger.Debug().Str("path", path).Msg("track loaded")
	return nil
}

// TogglePlay flips between playing and paused.
func (s *Session) TogglePlay() {
	if s.mode == Idle || s.mode == Scrubbing {
		return
	}
	if s.engine.State() == player.Playing {
		s.engine.Pause()
		s.playing = false
		return
	}
	s.engine.Play()
	s.playing = true
}

// ApplyRange parses the two time strings and switches to looping that
// range. Unparseable or invalid input leaves everything unchanged.
func (s *Session) ApplyRange(startText, endText string) error {
	if s.mode == Idle {
		return ErrNoMedia
	}
	if s.mode == Scrubbing {
		return ErrScrubbing
	}
	start, err := timecode.ParseStrict(startText)
	if err != nil {
		return err
	}
	end, err := timecode.ParseStrict(endText)
	if err != nil {
		return err
	}
	r, err := timeline.NewRange(start, end, s.fullDuration)
	if err != nil {
		return err
	}
	return s.applySlice(r)
}

func (s *Session) applySlice(r timeline.Range) error {
	wasPlaying := s.engine.State() == player.Playing

	asset, err := s.slicer.Materialize(s.source, r)
	if err != nil {
		s.logger.Warn().Err(err).Int("start_ms", r.Start).Int("end_ms", r.End).Msg("materialize failed")
		return err
	}

	s.engine.Stop()
	s.engine.SetLooping(true)
	if err := s.engine.Load(asset.Path); err != nil {
		s.logger.Error().Err(err).Str("asset", asset.Path).Msg("load slice failed, restoring track")
		s.reloadSource()
		return fmt.Errorf("load slice: %w", err)
	}

	s.asset = asset
	s.tl.Set(r)
	s.mode = SlicedLoop
	s.resumeAfterLoad = wasPlaying
	s.playing = false
	s.suppress = 0
	s.display = r.Start
	s.applyRate()

	s.logger.Debug().Int("start_ms", r.Start).Int("end_ms", r.End).Bool("resume", wasPlaying).Msg("loop applied")
	return nil
}

// reloadSource puts the original track back after a failed slice swap.
func (s *Session) reloadSource() {
	s.engine.SetLooping(false)
	if err := s.engine.Load(s.source); err != nil {
		s.logger.Error().Err(err).Str("path", s.source).Msg("reload source failed")
	}
	s.tl.Clear()
	s.asset = nil
	s.mode = FullTrack
	s.display = 0
	s.playing = false
	s.applyRate()
}

// RestoreFullTrack leaves loop mode and plays the original file from the
// start. It also works as a restart while already in full-track mode.
func (s *Session) RestoreFullTrack() error {
	if s.mode == Idle {
		return ErrNoMedia
	}
	s.engine.Stop()
	s.engine.SetLooping(false)
	if err := s.engine.Load(s.source); err != nil {
		return fmt.Errorf("reload %s: %w", s.source, err)
	}
	s.tl.Clear()
	s.asset = nil
	s.mode = FullTrack
	s.display = 0
	s.suppress = 0
	s.resumeAfterLoad = false
	s.applyRate()
	s.engine.Play()
	s.playing = true

	s.logger.Debug().Msg("full track restored")
	return nil
}

// Skip moves by deltaMs in full-track time and returns the clamped target.
// Inside a loop the engine lands on the nearest slice bound.
func (s *Session) Skip(deltaMs int) int {
	current := s.tl.ToFull(durationMs(s.engine.Position()))
	if s.fullDuration <= 0 || s.mode == Idle || s.mode == Scrubbing {
		return current
	}
	target := max(0, min(current+deltaMs, s.fullDuration))
	s.seekFull(target)
	return target
}

// ResetPosition jumps to the start of the track, or of the loop.
func (s *Session) ResetPosition() {
	if s.mode == Idle || s.mode == Scrubbing {
		return
	}
	s.seekFull(0)
}

// SeekTo jumps to a full-track position in one step, as a click on the
// seek bar or a remote control would.
func (s *Session) SeekTo(fullMs int) {
	if s.mode == Idle || s.mode == Scrubbing || s.fullDuration <= 0 {
		return
	}
	s.seekFull(max(0, min(fullMs, s.fullDuration)))
}

func (s *Session) seekFull(full int) {
	rel := s.tl.ToSlice(full)
	s.suppress = suppressAfterSeek
	s.engine.SetPosition(msDuration(rel))
	s.display = s.tl.ToFull(rel)
}

// SeekBegin starts a drag. The engine pauses until SeekRelease.
func (s *Session) SeekBegin() {
	if s.mode == Idle || s.mode == Scrubbing || s.fullDuration <= 0 {
		return
	}
	s.scrubFrom = s.mode
	s.scrubPlaying = s.engine.State() == player.Playing
	s.engine.Pause()
	s.mode = Scrubbing
}

// SeekMove updates the displayed position during a drag. The engine is
// not touched.
func (s *Session) SeekMove(fullMs int) {
	if s.mode != Scrubbing {
		return
	}
	s.display = s.tl.Clamp(max(0, min(fullMs, s.fullDuration)))
}

// SeekRelease ends a drag: the engine seeks to the dragged position and
// playback resumes only if it was running when the drag began. A drag
// started while paused leaves playback paused.
func (s *Session) SeekRelease() {
	if s.mode != Scrubbing {
		return
	}
	rel := s.tl.ToSlice(s.display)
	s.suppress = suppressAfterSeek
	s.engine.SetPosition(msDuration(rel))
	s.mode = s.scrubFrom
	if s.scrubPlaying {
		s.engine.Play()
		s.playing = true
	}
}

// SetSpeed sets the playback speed in percent of normal.
func (s *Session) SetSpeed(percent int) {
	s.speed = max(1, percent)
	s.applyRate()
}

func (s *Session) applyRate() {
	s.engine.SetRate(float64(s.speed) / 100)
}

// SetVolume sets the output volume in percent.
func (s *Session) SetVolume(percent int) {
	s.volume = max(0, min(percent, 100))
	s.engine.SetVolume(s.volume)
}

// Close stops playback and removes scratch slices.
func (s *Session) Close() error {
	s.engine.Stop()
	if s.slicer == nil {
		return nil
	}
	return s.slicer.Cleanup()
}

func durationMs(d time.Duration) int {
	return int(d / time.Millisecond)
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
