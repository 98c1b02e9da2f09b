// Package timecode converts between user-entered time strings and milliseconds.
//
// Accepted input is either "mm:ss" or a plain number of seconds. Output is
// always "mm:ss.mmm". The two are deliberately asymmetric: Format output
// with a millisecond part does not parse back.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a time string cannot be parsed.
var ErrMalformed = errors.New("malformed time")

const maxMillis = math.MaxUint32

// Parse converts "mm:ss" or "ss" into milliseconds.
// ok is false for empty, malformed or out of range input.
func Parse(text string) (ms int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	var seconds uint64
	if strings.Contains(text, ":") {
		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return 0, false
		}
		m, ok := component(parts[0])
		if !ok {
			return 0, false
		}
		s, ok := component(parts[1])
		if !ok {
			return 0, false
		}
		seconds = m*60 + s
	} else {
		s, ok := component(text)
		if !ok {
			return 0, false
		}
		seconds = s
	}

	if seconds > maxMillis/1000 {
		return 0, false
	}
	return int(seconds * 1000), true
}

// ParseStrict is Parse with an error instead of a flag.
func ParseStrict(text string) (int, error) {
	ms, ok := Parse(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	return ms, nil
}

// component parses a non-negative decimal integer, surrounding spaces allowed.
func component(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders milliseconds as "mm:ss.mmm". Minutes are not clamped,
// so an hour-long track shows as "60:00.000".
func Format(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}

// FormatClock renders milliseconds as "mm:ss", dropping the millisecond part.
// Its output is accepted by Parse.
func FormatClock(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d", ms/60000, (ms/1000)%60)
}
