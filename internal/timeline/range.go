// Package timeline maps positions between the full-length track and a
// materialized slice of it, and projects the active slice onto a bar.
package timeline

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a range does not satisfy
// 0 <= start < end <= duration.
var ErrInvalidRange = errors.New("invalid range")

// Range is a half-open [Start, End) window of a track in milliseconds.
type Range struct {
	Start int
	End   int
}

// NewRange validates start and end against the full-track duration.
// A fullDuration of 0 means the duration is not known yet and only the
// ordering is checked.
func NewRange(start, end, fullDuration int) (Range, error) {
	if start < 0 || start >= end {
		return Range{}, fmt.Errorf("%w: start %d must be before end %d", ErrInvalidRange, start, end)
	}
	if fullDuration > 0 && end > fullDuration {
		return Range{}, fmt.Errorf("%w: end %d past duration %d", ErrInvalidRange, end, fullDuration)
	}
	return Range{Start: start, End: end}, nil
}

// Len returns the length of the range in milliseconds.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether ms lies within [Start, End].
func (r Range) Contains(ms int) bool {
	return ms >= r.Start && ms <= r.End
}
