package slice

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/timeline"
)

const rate = beep.SampleRate(8000)

// writeSource writes a WAV where every sample holds its own second index,
// so a slice can be checked for where it was cut from.
func writeSource(t *testing.T, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	n := rate.N(d)
	pos := 0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		k := min(len(samples), n-pos)
		for i := range k {
			v := float64((pos+i)/int(rate)) / 100
			samples[i] = [2]float64{v, v}
		}
		pos += k
		return k, true
	})
	require.NoError(t, wav.Encode(f, src, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}))
	return path
}

func newTestMaterializer(t *testing.T) *Materializer {
	t.Helper()
	m, err := New(filepath.Join(t.TempDir(), "scratch"), zerolog.Nop())
	require.NoError(t, err)
	return m
}

func TestMaterialize(t *testing.T) {
	src := writeSource(t, 10*time.Second)
	m := newTestMaterializer(t)

	asset, err := m.Materialize(src, timeline.Range{Start: 3000, End: 5000})
	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(asset.Path), m.Dir())
	assert.Equal(t, timeline.Range{Start: 3000, End: 5000}, asset.Range)
	assert.Positive(t, asset.Size)

	s, format, err := player.Decode(asset.Path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, rate, format.SampleRate)
	assert.Equal(t, rate.N(2*time.Second), s.Len())

	buf := make([][2]float64, 1)
	_, ok := s.Stream(buf)
	require.True(t, ok)
	assert.InDelta(t, 0.03, buf[0][0], 0.001, "first sample comes from second 3")
}

func TestMaterialize_FreshFileEachCall(t *testing.T) {
	src := writeSource(t, 4*time.Second)
	m := newTestMaterializer(t)

	a, err := m.Materialize(src, timeline.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	b, err := m.Materialize(src, timeline.Range{Start: 0, End: 1000})
	require.NoError(t, err)
	assert.NotEqual(t, a.Path, b.Path)
}

func TestMaterialize_InvalidRange(t *testing.T) {
	src := writeSource(t, 4*time.Second)
	m := newTestMaterializer(t)

	tests := []struct {
		name string
		r    timeline.Range
	}{
		{"empty", timeline.Range{Start: 1000, End: 1000}},
		{"reversed", timeline.Range{Start: 2000, End: 1000}},
		{"negative", timeline.Range{Start: -5, End: 1000}},
		{"past end", timeline.Range{Start: 1000, End: 9000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Materialize(src, tt.r)
			assert.True(t, errors.Is(err, timeline.ErrInvalidRange), "err = %v", err)
		})
	}
	assert.Empty(t, m.Assets())
}

func TestMaterialize_DecodeError(t *testing.T) {
	m := newTestMaterializer(t)
	bad := filepath.Join(t.TempDir(), "bad.mp3")
	require.NoError(t, os.WriteFile(bad, []byte("not an mp3"), 0o644))

	_, err := m.Materialize(bad, timeline.Range{Start: 0, End: 1000})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, bad, de.Path)
}

func TestMaterialize_MissingSource(t *testing.T) {
	m := newTestMaterializer(t)
	_, err := m.Materialize(filepath.Join(t.TempDir(), "gone.flac"), timeline.Range{Start: 0, End: 1000})
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestMaterialize_UnknownLengthPastEnd(t *testing.T) {
	src := writeSource(t, 2*time.Second)
	m := newTestMaterializer(t)
	m.decode = func(path string) (beep.StreamSeekCloser, beep.Format, error) {
		s, f, err := player.Decode(path)
		return unknownLen{s}, f, err
	}

	_, err := m.Materialize(src, timeline.Range{Start: 1000, End: 5000})
	assert.True(t, errors.Is(err, timeline.ErrInvalidRange), "err = %v", err)

	entries, err := os.ReadDir(m.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "partial slice removed")
}

func TestMaterialize_StatFailureRemovesSlice(t *testing.T) {
	src := writeSource(t, 2*time.Second)
	m := newTestMaterializer(t)
	m.stat = func(string) (os.FileInfo, error) { return nil, os.ErrPermission }

	_, err := m.Materialize(src, timeline.Range{Start: 0, End: 1000})
	assert.True(t, errors.Is(err, ErrDecode), "err = %v", err)

	entries, err := os.ReadDir(m.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "unrecorded slice removed")
	assert.NoError(t, m.Cleanup())
}

type unknownLen struct{ beep.StreamSeekCloser }

func (unknownLen) Len() int { return 0 }

func TestRetentionAndCleanup(t *testing.T) {
	src := writeSource(t, 4*time.Second)
	m := newTestMaterializer(t)

	var paths []string
	for i := range 4 {
		a, err := m.Materialize(src, timeline.Range{Start: i * 500, End: i*500 + 500})
		require.NoError(t, err)
		paths = append(paths, a.Path)
	}

	assert.Equal(t, paths[2:], m.Assets())
	for _, p := range paths[:2] {
		_, err := os.Stat(p)
		assert.True(t, errors.Is(err, os.ErrNotExist), "%s should be gone", p)
	}

	require.NoError(t, m.Cleanup())
	for _, p := range paths[2:] {
		_, err := os.Stat(p)
		assert.True(t, errors.Is(err, os.ErrNotExist), "%s should be gone", p)
	}
	assert.Empty(t, m.Assets())
}
