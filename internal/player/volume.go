package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the output volume in percent, clamped to 0-100.
func (p *Player) SetVolume(percent int) {
	percent = max(0, min(percent, 100))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = float64(percent) / 100
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.applyVolumeLocked()
	speaker.Unlock()
}

// applyVolumeLocked writes volumeLevel into the effect.
// Callers hold p.mu and, once the chain is playing, the speaker lock.
func (p *Player) applyVolumeLocked() {
	p.volume.Volume = levelToVolume(p.volumeLevel)
	p.volume.Silent = p.volumeLevel <= 0
}

// levelToVolume converts a 0.0-1.0 level to beep's base-2 exponent.
// 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, and 0 is floored at -10.
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
