package player

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
)

type finite struct {
	left int
}

func (f *finite) Stream(samples [][2]float64) (int, bool) {
	if f.left == 0 {
		return 0, false
	}
	n := min(len(samples), f.left)
	for i := range n {
		samples[i] = [2]float64{1, 1}
	}
	f.left -= n
	return n, true
}

func (f *finite) Err() error { return nil }

func TestEndTracker_SignalsOnceAndFillsSilence(t *testing.T) {
	ends := 0
	tr := &endTracker{src: &finite{left: 6}, onEnd: func() { ends++ }}

	buf := make([][2]float64, 4)
	n, ok := tr.Stream(buf)
	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Equal(t, 0, ends)

	n, ok = tr.Stream(buf)
	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Equal(t, 1, ends)
	assert.Equal(t, [2]float64{1, 1}, buf[1])
	assert.Equal(t, [2]float64{0, 0}, buf[2])

	n, ok = tr.Stream(buf)
	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Equal(t, 1, ends, "end signalled only once")
	assert.Equal(t, [2]float64{0, 0}, buf[0])
}

func TestEndTracker_Rearm(t *testing.T) {
	ends := 0
	src := &finite{left: 2}
	tr := &endTracker{src: src, onEnd: func() { ends++ }}

	buf := make([][2]float64, 4)
	tr.Stream(buf)
	assert.Equal(t, 1, ends)

	src.left = 2
	tr.rearm()
	tr.Stream(buf)
	assert.Equal(t, 2, ends)
}

func TestEndTracker_NeverEndsWhenLooping(t *testing.T) {
	path, _ := writeRamp(t, 8000, 100*time.Millisecond)
	s, _, err := Decode(path)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	defer s.Close()

	looped, err := beep.Loop2(s)
	if err != nil {
		t.Fatalf("loop: %v", err)
	}
	ends := 0
	tr := &endTracker{src: looped, onEnd: func() { ends++ }}
	buf := make([][2]float64, 512)
	for range 20 {
		tr.Stream(buf)
	}
	assert.Equal(t, 0, ends)
	assert.LessOrEqual(t, s.Position(), s.Len())
}
