package player

import "github.com/gopxl/beep/v2"

// endTracker keeps the speaker fed after its source runs dry. The first
// time the source ends it calls onEnd and then streams silence until the
// source is seeked again, so the playback chain never leaves the mixer.
type endTracker struct {
	src   beep.Streamer
	ended bool
	onEnd func()
}

func (t *endTracker) Stream(samples [][2]float64) (int, bool) {
	n := 0
	if !t.ended {
		var ok bool
		n, ok = t.src.Stream(samples)
		if !ok || n < len(samples) {
			t.ended = true
			if t.onEnd != nil {
				t.onEnd()
			}
		}
	}
	clear(samples[n:])
	return len(samples), true
}

func (t *endTracker) Err() error {
	return t.src.Err()
}

// rearm is called after a seek; the caller holds the speaker lock.
func (t *endTracker) rearm() {
	t.ended = false
}
