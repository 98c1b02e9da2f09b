package player

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// writeRamp writes a stereo WAV whose samples ramp with their index.
func writeRamp(t *testing.T, rate beep.SampleRate, d time.Duration) (string, int) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ramp.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	n := rate.N(d)
	pos := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		k := min(len(samples), n-pos)
		for i := range k {
			v := float64((pos+i)%100) / 200
			samples[i] = [2]float64{v, -v}
		}
		pos += k
		return k, true
	})
	if err := wav.Encode(f, src, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path, n
}
