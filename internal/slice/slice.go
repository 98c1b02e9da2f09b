// Package slice cuts a time range out of a track into a standalone WAV
// file that the engine can loop natively.
package slice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog"

	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/timeline"
)

// ErrDecode is matched by every *DecodeError.
var ErrDecode = errors.New("decode failed")

// DecodeError reports a source that could not be opened, decoded or
// written out as a slice.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("slice %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) true for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// Asset is a materialized slice on disk.
type Asset struct {
	Path   string
	Source string
	Range  timeline.Range
	Format beep.Format
	Size   int64
}

// keepAssets is how many of the newest assets survive a Materialize:
// the one just produced and the one the engine may still have open.
const keepAssets = 2

// Materializer writes slices into a scratch directory.
type Materializer struct {
	dir    string
	logger zerolog.Logger
	decode func(string) (beep.StreamSeekCloser, beep.Format, error)
	stat   func(string) (os.FileInfo, error)

	mu     sync.Mutex
	assets []string
}

// DefaultDir is the scratch directory used when none is configured.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "practicehard")
}

// New creates the scratch directory if needed.
func New(dir string, logger zerolog.Logger) (*Materializer, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Materializer{
		dir:    dir,
		logger: logger.With().Str("component", "slice").Logger(),
		decode: player.Decode,
		stat:   os.Stat,
	}, nil
}

// Dir returns the scratch directory.
func (m *Materializer) Dir() string { return m.dir }

// Materialize decodes source and writes [r.Start, r.End) to a new WAV file.
// Every call produces a fresh file.
func (m *Materializer) Materialize(source string, r timeline.Range) (*Asset, error) {
	if _, err := timeline.NewRange(r.Start, r.End, 0); err != nil {
		return nil, err
	}
	started := time.Now()

	streamer, format, err := m.decode(source)
	if err != nil {
		return nil, &DecodeError{Path: source, Err: err}
	}
	defer streamer.Close()

	from := format.SampleRate.N(time.Duration(r.Start) * time.Millisecond)
	to := format.SampleRate.N(time.Duration(r.End) * time.Millisecond)
	if l := streamer.Len(); l > 0 && to > l {
		return nil, fmt.Errorf("%w: end %dms past track end %dms",
			timeline.ErrInvalidRange, r.End, format.SampleRate.D(l).Milliseconds())
	}
	if err := streamer.Seek(from); err != nil {
		return nil, &DecodeError{Path: source, Err: fmt.Errorf("seek: %w", err)}
	}

	out := filepath.Join(m.dir, "slice-"+uuid.NewString()+".wav")
	f, err := os.Create(out)
	if err != nil {
		return nil, &DecodeError{Path: source, Err: err}
	}

	counted := &counter{s: beep.Take(to-from, streamer)}
	outFormat := beep.Format{SampleRate: format.SampleRate, NumChannels: 2, Precision: 2}
	err = wav.Encode(f, counted, outFormat)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = streamer.Err()
	}
	if err != nil {
		os.Remove(out)
		return nil, &DecodeError{Path: source, Err: err}
	}

	// Decoders that cannot tell their length up front are checked here.
	if counted.n < to-from {
		os.Remove(out)
		return nil, fmt.Errorf("%w: end %dms past track end %dms",
			timeline.ErrInvalidRange, r.End, format.SampleRate.D(from+counted.n).Milliseconds())
	}

	info, err := m.stat(out)
	if err != nil {
		os.Remove(out)
		return nil, &DecodeError{Path: source, Err: err}
	}

	m.track(out)
	m.logger.Info().
		Str("source", source).
		Int("start_ms", r.Start).
		Int("end_ms", r.End).
		Str("size", humanize.Bytes(uint64(info.Size()))). //nolint:gosec // file sizes are positive
		Dur("elapsed", time.Since(started)).
		Msg("slice materialized")

	return &Asset{
		Path:   out,
		Source: source,
		Range:  r,
		Format: outFormat,
		Size:   info.Size(),
	}, nil
}

// track records a new asset and removes the ones that fell out of use.
func (m *Materializer) track(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets = append(m.assets, path)
	for len(m.assets) > keepAssets {
		old := m.assets[0]
		m.assets = m.assets[1:]
		if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.logger.Warn().Err(err).Str("path", old).Msg("remove stale slice")
		}
	}
}

// Cleanup removes every asset this materializer produced.
func (m *Materializer) Cleanup() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var errs []error
	for _, p := range m.assets {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	m.assets = nil
	return errors.Join(errs...)
}

// Assets lists the slice files currently kept on disk, oldest first.
func (m *Materializer) Assets() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.assets...)
}

// counter counts the samples that pass through.
type counter struct {
	s beep.Streamer
	n int
}

func (c *counter) Stream(samples [][2]float64) (int, bool) {
	n, ok := c.s.Stream(samples)
	c.n += n
	return n, ok
}

func (c *counter) Err() error { return c.s.Err() }
