package timeline

// Translator converts between full-track and slice-relative positions.
// Without an active slice both conversions are the identity.
type Translator struct {
	r      Range
	active bool
}

// Set makes r the active slice.
func (t *Translator) Set(r Range) {
	t.r = r
	t.active = true
}

// Clear returns to full-track mode.
func (t *Translator) Clear() {
	t.r = Range{}
	t.active = false
}

// Active returns the active slice, if any.
func (t *Translator) Active() (Range, bool) {
	return t.r, t.active
}

// ToSlice converts a full-track position to a slice-relative one.
// Positions outside the slice are clamped to its bounds first.
func (t *Translator) ToSlice(full int) int {
	if !t.active {
		return full
	}
	return t.Clamp(full) - t.r.Start
}

// ToFull converts a slice-relative position to a full-track one.
func (t *Translator) ToFull(slice int) int {
	if !t.active {
		return slice
	}
	return t.r.Start + slice
}

// Clamp limits a full-track position to the active slice bounds.
func (t *Translator) Clamp(full int) int {
	if !t.active {
		return full
	}
	return max(t.r.Start, min(full, t.r.End))
}
