// Package rangeeditor edits the three range preset slots of a track in a
// grid of start/end inputs.
package rangeeditor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

const (
	columns    = 2
	inputWidth = 8
	fieldCount = presets.Slots * columns
)

// Model holds one input per slot field, row-major.
type Model struct {
	ui.Base
	title  string
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// New creates a range editor for the given slots.
func New(title string, ranges presets.Ranges) Model {
	m := Model{title: title}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "mm:ss"
		ti.CharLimit = 12
		ti.Width = inputWidth
		ti.Prompt = ""
		r := ranges[i/columns]
		if i%columns == 0 {
			ti.SetValue(r.Start)
		} else {
			ti.SetValue(r.End)
		}
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true})
		}
	case "enter":
		ranges, err := m.ranges()
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		return m, func() tea.Msg {
			return ActionMsg(Result{Ranges: ranges})
		}
	case "tab", "right":
		if keyMsg.String() == "right" && !m.atEnd() {
			break
		}
		return m, m.move(1)
	case "shift+tab", "left":
		if keyMsg.String() == "left" && m.inputs[m.focus].Position() > 0 {
			break
		}
		return m, m.move(-1)
	case "down":
		return m, m.move(columns)
	case "up":
		return m, m.move(-columns)
	case "ctrl+d":
		// Clear the focused slot.
		row := m.focus / columns * columns
		m.inputs[row].SetValue("")
		m.inputs[row+1].SetValue("")
		m.err = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.err = ""
	return m, cmd
}

func (m *Model) atEnd() bool {
	in := m.inputs[m.focus]
	return in.Position() >= len([]rune(in.Value()))
}

// move shifts focus by delta fields, wrapping around the grid.
func (m *Model) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = ((m.focus+delta)%fieldCount + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Focused returns the index of the focused field, row-major.
func (m *Model) Focused() int {
	return m.focus
}

// ranges validates the grid the same way the store does: a slot is either
// fully blank or two parseable times.
func (m *Model) ranges() (presets.Ranges, error) {
	var out presets.Ranges
	for slot := range presets.Slots {
		start := strings.TrimSpace(m.inputs[slot*columns].Value())
		end := strings.TrimSpace(m.inputs[slot*columns+1].Value())
		out[slot] = presets.RangePreset{Start: start, End: end}
		if start == "" && end == "" {
			continue
		}
		if _, ok := timecode.Parse(start); !ok {
			return out, fmt.Errorf("slot %d: invalid start %q", slot+1, start)
		}
		if _, ok := timecode.Parse(end); !ok {
			return out, fmt.Errorf("slot %d: invalid end %q", slot+1, end)
		}
	}
	return out, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)
	label := lipgloss.NewStyle().Foreground(t.FgMuted)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(label.Render(fmt.Sprintf("      %-*s   %-*s", inputWidth+1, "Start", inputWidth+1, "End")))
	b.WriteString("\n")
	for slot := range presets.Slots {
		fmt.Fprintf(&b, "  %d:  %s   %s\n",
			slot+1,
			m.field(slot*columns),
			m.field(slot*columns+1))
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("tab/arrows move · ctrl+d clear slot · enter save · esc cancel"))
	return b.String()
}

func (m *Model) field(i int) string {
	style := lipgloss.NewStyle().Width(inputWidth + 1)
	if i == m.focus {
		return "[" + style.Render(m.inputs[i].View()) + "]"
	}
	return " " + style.Render(m.inputs[i].View()) + " "
}
