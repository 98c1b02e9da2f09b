package timeline

// Markers are the loop bounds as fractions of the full track.
type Markers struct {
	X1 float64
	X2 float64
}

// Project returns the active slice as fractions of fullDuration.
// It reports false when no slice is active or the duration is unknown.
func Project(r Range, active bool, fullDuration int) (Markers, bool) {
	if !active || fullDuration <= 0 {
		return Markers{}, false
	}
	d := float64(fullDuration)
	x1 := clampUnit(float64(r.Start) / d)
	x2 := clampUnit(float64(r.End) / d)
	if x2 < x1 {
		x2 = x1
	}
	return Markers{X1: x1, X2: x2}, true
}

// Columns scales the markers onto a bar of width cells.
func (m Markers) Columns(width int) (int, int) {
	if width <= 0 {
		return 0, 0
	}
	return column(m.X1, width), column(m.X2, width)
}

func column(x float64, width int) int {
	c := int(x * float64(width))
	return min(c, width-1)
}

func clampUnit(x float64) float64 {
	return max(0, min(x, 1))
}
