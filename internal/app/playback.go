// internal/app/playback.go
package app

import (
	"fmt"
	"time"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/session"
)

const (
	speedStep  = 5
	volumeStep = 5
)

// skipSteps are the selectable skip intervals in milliseconds.
var skipSteps = []int{1000, 2000, 5000, 10000, 15000, 30000, 60000}

func (m *Model) togglePlay() {
	if m.session.Mode() == session.Idle {
		m.setStatus("Open a file first (o)")
		return
	}
	m.session.TogglePlay()
}

func (m *Model) skip(delta int) {
	if !m.session.TransportEnabled() {
		return
	}
	m.session.Skip(delta)
}

// changeSkipInterval moves to the next longer (dir > 0) or shorter step.
func (m *Model) changeSkipInterval(dir int) {
	next := m.skipMs
	if dir > 0 {
		for _, s := range skipSteps {
			if s > m.skipMs {
				next = s
				break
			}
		}
	} else {
		for i := len(skipSteps) - 1; i >= 0; i-- {
			if skipSteps[i] < m.skipMs {
				next = skipSteps[i]
				break
			}
		}
	}
	if next == m.skipMs {
		return
	}
	m.skipMs = next
	m.setStatus("Skip interval " + skipLabel(next))
	m.saveSettings()
}

func skipLabel(ms int) string {
	return (time.Duration(ms) * time.Millisecond).String()
}

// speedCeiling is the top of the speed control for the current track.
func (m *Model) speedCeiling() int {
	return presets.SpeedCeiling(m.speeds)
}

func (m *Model) setSpeed(percent int) {
	percent = max(presets.MinSpeed, min(percent, m.speedCeiling()))
	if percent == m.session.Speed() {
		return
	}
	m.session.SetSpeed(percent)
	m.setStatus(fmt.Sprintf("Speed %d%%", percent))
	m.saveSettings()
}

// cycleSpeedPreset applies the next (dir > 0) or previous speed preset.
func (m *Model) cycleSpeedPreset(dir int) {
	if len(m.speeds) == 0 {
		m.setStatus("No speed presets (E to edit)")
		return
	}
	n := len(m.speeds)
	switch {
	case m.speedIdx < 0 && dir < 0:
		m.speedIdx = n - 1
	case m.speedIdx < 0:
		m.speedIdx = 0
	default:
		m.speedIdx = ((m.speedIdx+dir)%n + n) % n
	}
	m.setSpeed(m.speeds[m.speedIdx])
}

func (m *Model) setVolume(percent int) {
	percent = max(0, min(percent, 100))
	if percent == m.session.Volume() {
		return
	}
	m.session.SetVolume(percent)
	m.setStatus(fmt.Sprintf("Volume %d%%", percent))
	m.saveSettings()
}
