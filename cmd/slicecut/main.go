// Command slicecut writes one range of an audio file to a WAV file, using
// the same materializer as the player.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/llehouerou/practicehard/internal/logging"
	"github.com/llehouerou/practicehard/internal/slice"
	"github.com/llehouerou/practicehard/internal/tags"
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/timeline"
)

func main() {
	in := flag.String("in", "", "source audio file")
	from := flag.String("from", "", "range start (mm:ss or seconds)")
	to := flag.String("to", "", "range end (mm:ss or seconds)")
	out := flag.String("out", "", "output WAV file (default <name>_<from>-<to>.wav)")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger := logging.Console(*level)
	if *in == "" || *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(logger, *in, *from, *to, *out); err != nil {
		logger.Error().Err(err).Msg("slicecut failed")
		os.Exit(1)
	}
}

func run(logger zerolog.Logger, in, from, to, out string) error {
	start, err := timecode.ParseStrict(from)
	if err != nil {
		return err
	}
	end, err := timecode.ParseStrict(to)
	if err != nil {
		return err
	}
	r, err := timeline.NewRange(start, end, 0)
	if err != nil {
		return err
	}
	if out == "" {
		out = defaultOutput(in, r)
	}

	scratch, err := os.MkdirTemp("", "slicecut-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	m, err := slice.New(scratch, logger)
	if err != nil {
		return err
	}
	asset, err := m.Materialize(in, r)
	if err != nil {
		var de *slice.DecodeError
		if errors.As(err, &de) {
			return fmt.Errorf("cannot decode %s: %w", de.Path, de.Err)
		}
		return err
	}

	if err := copyFile(asset.Path, out); err != nil {
		return err
	}
	logger.Info().
		Str("out", out).
		Str("range", timecode.Format(r.Start)+" - "+timecode.Format(r.End)).
		Str("size", humanize.Bytes(uint64(asset.Size))). //nolint:gosec // file sizes are positive
		Msg("slice written")
	return nil
}

func defaultOutput(in string, r timeline.Range) string {
	clock := func(ms int) string { return strings.ReplaceAll(timecode.FormatClock(ms), ":", "") }
	return fmt.Sprintf("%s_%s-%s.wav", tags.Stem(in), clock(r.Start), clock(r.End))
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
