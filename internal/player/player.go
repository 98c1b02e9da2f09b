package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// Options tunes the engine.
type Options struct {
	// PositionInterval is how often PositionChanged fires while playing.
	PositionInterval time.Duration
	// Buffer is the speaker buffer length.
	Buffer time.Duration
}

// DefaultOptions are used for zero fields of Options.
var DefaultOptions = Options{
	PositionInterval: 100 * time.Millisecond,
	Buffer:           100 * time.Millisecond,
}

// Player is the beep-backed playback engine.
//
// The chain handed to the speaker is
// volume → resampler → ctrl → endTracker → [loop] → decoder.
// The resampler handles both the speed ratio and conversion to the
// speaker's sample rate.
type Player struct {
	mu sync.Mutex

	opts     Options
	state    State
	path     string
	streamer beep.StreamSeekCloser
	format   beep.Format
	tracker  *endTracker
	ctrl     *beep.Ctrl
	resample *beep.Resampler
	volume   *effects.Volume

	rate        float64
	volumeLevel float64
	looping     bool

	events chan Event
	quit   chan struct{}
	wg     sync.WaitGroup
}

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// New creates an idle engine. The audio device is opened on first Load.
func New(opts Options) *Player {
	if opts.PositionInterval <= 0 {
		opts.PositionInterval = DefaultOptions.PositionInterval
	}
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultOptions.Buffer
	}
	p := &Player{
		opts:        opts,
		state:       Stopped,
		rate:        1,
		volumeLevel: 1,
		events:      make(chan Event, eventBuffer),
		quit:        make(chan struct{}),
	}
	p.wg.Add(1)
	go p.positionLoop()
	return p
}

func initSpeaker(rate beep.SampleRate, buffer time.Duration) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// Load decodes path and swaps it in. On error the current media is kept.
func (p *Player) Load(path string) error {
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}
	if err := initSpeaker(format.SampleRate, p.opts.Buffer); err != nil {
		streamer.Close()
		return err
	}

	p.mu.Lock()
	var src beep.Streamer = streamer
	if p.looping {
		looped, err := beep.Loop2(streamer)
		if err != nil {
			p.mu.Unlock()
			streamer.Close()
			return fmt.Errorf("loop %s: %w", path, err)
		}
		src = looped
	}
	p.unloadLocked()
	p.tracker = &endTracker{src: src, onEnd: func() {
		emit(p.events, Event{Kind: EndOfMedia, Path: path})
	}}
	p.ctrl = &beep.Ctrl{Streamer: p.tracker, Paused: true}
	p.resample = beep.ResampleRatio(4, p.ratio(format), p.ctrl)
	p.volume = &effects.Volume{Streamer: p.resample, Base: 2}
	p.applyVolumeLocked()

	p.streamer = streamer
	p.format = format
	p.path = path
	p.state = Stopped
	duration := format.SampleRate.D(streamer.Len())
	p.mu.Unlock()

	speaker.Play(p.volume)

	emit(p.events, Event{Kind: DurationChanged, Value: duration, Path: path})
	emit(p.events, Event{Kind: LoadCompleted, Path: path})
	return nil
}

// unloadLocked detaches and closes the current media.
func (p *Player) unloadLocked() {
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.streamer = nil
	p.tracker = nil
	p.ctrl = nil
	p.resample = nil
	p.volume = nil
	p.path = ""
	p.state = Stopped
}

// ratio combines the speed with sample rate conversion.
func (p *Player) ratio(format beep.Format) float64 {
	r := p.rate
	if speakerSampleRate > 0 && format.SampleRate != speakerSampleRate {
		r *= float64(format.SampleRate) / float64(speakerSampleRate)
	}
	return r
}

func (p *Player) positionLoop() {
	defer p.wg.Done()
	ticker := time.NewTicker(p.opts.PositionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.quit:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.state != Playing {
				p.mu.Unlock()
				continue
			}
			pos := p.positionLocked()
			path := p.path
			p.mu.Unlock()
			emit(p.events, Event{Kind: PositionChanged, Value: pos, Path: path})
		}
	}
}

// Events returns the engine notification channel.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Close stops playback, releases the media and stops the position loop.
func (p *Player) Close() error {
	select {
	case <-p.quit:
		return nil
	default:
	}
	close(p.quit)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.unloadLocked()
	return nil
}
