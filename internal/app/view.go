// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/session"
	"github.com/llehouerou/practicehard/internal/tags"
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/cover"
	"github.com/llehouerou/practicehard/internal/ui/render"
	"github.com/llehouerou/practicehard/internal/ui/seekbar"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

const (
	headerRows = 2 // title and a blank line
	infoRows   = 9
	coverGap   = 2
)

// showCover reports whether the terminal is wide enough for the cover.
func (m Model) showCover() bool {
	return m.width >= ui.MinCoverWidth
}

func (m Model) bodyHeight() int {
	if m.showCover() {
		return max(ui.CoverRows, infoRows)
	}
	return infoRows
}

// seekRow is the screen row holding the seek bar.
func (m Model) seekRow() int {
	return headerRows + m.bodyHeight() + 1
}

func (m Model) seekState() seekbar.State {
	snap := m.session.Snapshot()
	return seekbar.State{
		Position:  snap.Position,
		Duration:  snap.Duration,
		Playing:   snap.Playing,
		Scrubbing: snap.Mode == session.Scrubbing,
		Markers:   snap.Markers,
		HasLoop:   snap.ShowMarkers,
	}
}

func (m Model) seekLayout() seekbar.Layout {
	return seekbar.Measure(m.seekState(), m.width)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderHeader(), "")
	lines = append(lines, m.renderBody()...)
	lines = append(lines, "", seekbar.Render(m.seekState(), m.width))

	s := styles.T().S()
	lines = append(lines,
		render.Row(s.Base.Render(m.session.TimeLabel()), s.Subtle.Render("?: help"), m.width),
		m.renderStatus(),
		s.Subtle.Render(render.Truncate(m.hint(), m.width)),
	)

	for len(lines) < m.height {
		lines = append(lines, "")
	}
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return m.popups.RenderOverlay(strings.Join(lines, "\n"))
}

func (m Model) renderHeader() string {
	t := styles.T()
	if m.session.Mode() == session.Idle {
		return styles.ApplyBoldGradient("Practice Hard", t.Primary, t.Secondary) +
			t.S().Muted.Render("  press o to open a track")
	}
	title := render.Truncate("Now Practicing: "+render.Sanitize(tags.Stem(m.session.Source())), m.width)
	return styles.ApplyBoldGradient(title, t.Primary, t.Secondary)
}

func (m Model) renderBody() []string {
	info := m.infoLines()
	height := m.bodyHeight()
	if !m.showCover() {
		return padLines(info, height)
	}

	art := m.cover
	if art == "" {
		art = cover.Placeholder(ui.CoverCols, ui.CoverRows)
	}
	infoWidth := m.width - ui.CoverCols - coverGap
	for i, l := range info {
		info[i] = render.Truncate(l, infoWidth)
	}
	left := strings.Join(padLines(strings.Split(art, "\n"), height), "\n")
	right := strings.Join(padLines(info, height), "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", coverGap), right)
	return strings.Split(body, "\n")
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines[:n]
}

func (m Model) infoLines() []string {
	t := styles.T()
	s := t.S()

	title, details := "No track loaded", ""
	if m.tag != nil {
		title = m.tag.Title
		if title == "" {
			title = tags.Stem(m.tag.Path)
		}
		var parts []string
		if m.tag.Artist != "" {
			parts = append(parts, m.tag.Artist)
		}
		if m.tag.Album != "" {
			parts = append(parts, m.tag.Album)
		}
		details = strings.Join(parts, " · ")
	}

	return []string{
		s.Title.Render(render.Sanitize(title)),
		s.Muted.Render(render.Sanitize(details)),
		"",
		m.modeLine(),
		m.speedLine(),
		s.Base.Render(fmt.Sprintf("Volume %d%%   Skip %s", m.session.Volume(), skipLabel(m.skipMs))),
		"",
		m.inputsLine(),
		m.presetsLine(),
	}
}

func (m Model) modeLine() string {
	s := styles.T().S()
	snap := m.session.Snapshot()
	switch {
	case snap.Mode == session.Idle:
		return s.Muted.Render("Idle")
	case snap.Sliced:
		label := fmt.Sprintf("Loop %s - %s", timecode.FormatClock(snap.Slice.Start), timecode.FormatClock(snap.Slice.End))
		if snap.Mode == session.Scrubbing {
			label += " (seeking)"
		}
		return s.Loop.Render(label)
	case snap.Mode == session.Scrubbing:
		return s.Playing.Render("Seeking")
	default:
		return s.Base.Render("Full track")
	}
}

func (m Model) speedLine() string {
	s := styles.T().S()
	current := m.session.Speed()

	var b strings.Builder
	fmt.Fprintf(&b, "Speed %d%% (max %d%%)", current, m.speedCeiling())
	if len(m.speeds) > 0 {
		b.WriteString("   ")
		for i, v := range m.speeds {
			if i > 0 {
				b.WriteByte(' ')
			}
			if v == current {
				fmt.Fprintf(&b, "[%d]", v)
			} else {
				fmt.Fprintf(&b, "%d", v)
			}
		}
	}
	return s.Base.Render(b.String())
}

func (m Model) inputsLine() string {
	s := styles.T().S()
	label := s.Muted.Render("Range ")
	if m.inputsFocused {
		label = s.Playing.Render("Range ")
	}
	return label + m.startInput.View() + s.Muted.Render(" - ") + m.endInput.View()
}

func (m Model) presetsLine() string {
	s := styles.T().S()
	parts := make([]string, 0, len(m.ranges))
	for i, r := range m.ranges {
		if r.Empty() {
			parts = append(parts, s.Subtle.Render(fmt.Sprintf("%d: -", i+1)))
			continue
		}
		parts = append(parts, s.Marker.Render(fmt.Sprintf("%d:", i+1))+" "+s.Base.Render(r.Start+" - "+r.End))
	}
	return strings.Join(parts, "   ")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.status == "" {
		return ""
	}
	text := render.Truncate(m.status, m.width)
	if m.statusErr {
		return s.Error.Render(text)
	}
	return s.Muted.Render(text)
}

func (m Model) hint() string {
	if m.inputsFocused {
		return "Enter: apply  Tab: switch field  Esc: leave"
	}
	return "Space: play/pause  ←→: skip  Tab: range  1-3: presets  r: full track  o: open  q: quit"
}
