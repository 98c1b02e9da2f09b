// Package seekbar renders the full-track progress bar with the loop range
// markers, and maps mouse columns back to track positions.
package seekbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/timeline"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	scrubSymbol = "⇆"

	filledCell = "━"
	emptyCell  = "─"
	markerCell = "┃"

	gap = "  "
)

// State holds everything needed to render the bar. Positions are full-track
// milliseconds.
type State struct {
	Position  int
	Duration  int
	Playing   bool
	Scrubbing bool
	Markers   timeline.Markers
	HasLoop   bool
}

// Layout locates the bar cells inside a rendered line.
type Layout struct {
	Start int // column of the first bar cell
	Width int // number of bar cells
}

// Measure computes where the bar sits for a line of the given width.
func Measure(s State, width int) Layout {
	prefix := lipgloss.Width(status(s)) + len(gap) + lipgloss.Width(timecode.FormatClock(s.Position)) + len(gap)
	suffix := len(gap) + lipgloss.Width(timecode.FormatClock(s.Duration))
	return Layout{Start: prefix, Width: width - prefix - suffix}
}

// Contains reports whether column x falls on the bar.
func (l Layout) Contains(x int) bool {
	return l.Width >= ui.MinProgressBarWidth && x >= l.Start && x < l.Start+l.Width
}

// PositionAt maps column x to a full-track position. Columns left of the
// bar give 0 and columns right of it give duration.
func (l Layout) PositionAt(x, duration int) int {
	if l.Width <= 1 || duration <= 0 {
		return 0
	}
	cell := max(0, min(x-l.Start, l.Width-1))
	return cell * duration / (l.Width - 1)
}

// Render returns the bar line: status, position, bar, duration.
func Render(s State, width int) string {
	t := styles.T()
	pos := timecode.FormatClock(s.Position)
	dur := timecode.FormatClock(s.Duration)
	layout := Measure(s, width)

	if layout.Width < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return status(s) + gap + pos + " / " + dur
	}

	var b strings.Builder
	b.WriteString(t.S().Playing.Render(status(s)))
	b.WriteString(gap)
	b.WriteString(t.S().Base.Render(pos))
	b.WriteString(gap)
	b.WriteString(renderCells(s, layout.Width))
	b.WriteString(gap)
	b.WriteString(t.S().Muted.Render(dur))
	return b.String()
}

func renderCells(s State, width int) string {
	t := styles.T()
	filled := 0
	if s.Duration > 0 {
		filled = min(int(float64(width)*float64(s.Position)/float64(s.Duration)), width)
	}

	x1, x2 := -1, -1
	if s.HasLoop {
		x1, x2 = s.Markers.Columns(width)
	}

	filledStyle := lipgloss.NewStyle().Foreground(t.Primary)
	emptyStyle := t.S().Subtle

	var b strings.Builder
	for i := range width {
		switch {
		case i == x1 || i == x2:
			b.WriteString(t.S().Marker.Render(markerCell))
		case i > x1 && i < x2 && i < filled:
			b.WriteString(t.S().Loop.Render(filledCell))
		case i > x1 && i < x2:
			b.WriteString(t.S().Loop.Faint(true).Render(emptyCell))
		case i < filled:
			b.WriteString(filledStyle.Render(filledCell))
		default:
			b.WriteString(emptyStyle.Render(emptyCell))
		}
	}
	return b.String()
}

func status(s State) string {
	switch {
	case s.Scrubbing:
		return scrubSymbol
	case s.Playing:
		return playSymbol
	default:
		return pauseSymbol
	}
}
