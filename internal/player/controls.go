package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Play starts or resumes playback of the loaded media.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil || p.state == Playing {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Pause holds the current position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil || p.state != Playing {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Stop pauses and rewinds to the start. The media stays loaded.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	_ = p.streamer.Seek(0)
	p.tracker.rearm()
	speaker.Unlock()
	p.state = Stopped
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Loaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.streamer != nil
}

func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SetPosition seeks to pos, clamped to the media length.
func (p *Player) SetPosition(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	n := max(p.format.SampleRate.N(pos), 0)
	if l := p.streamer.Len(); l > 0 && n > l {
		n = l
	}
	speaker.Lock()
	_ = p.streamer.Seek(n)
	p.tracker.rearm()
	speaker.Unlock()
}

// SetRate changes the playback speed. Pitch follows the speed.
func (p *Player) SetRate(ratio float64) {
	ratio = max(0.01, min(ratio, 4))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = ratio
	if p.resample == nil {
		return
	}
	speaker.Lock()
	p.resample.SetRatio(p.ratio(p.format))
	speaker.Unlock()
}

// SetLooping takes effect on the next Load.
func (p *Player) SetLooping(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.looping = loop
}
