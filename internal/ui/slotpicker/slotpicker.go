// Package slotpicker asks which range preset slot to overwrite when all
// slots are taken.
package slotpicker

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(styles.T().Primary)
}

// Model lists the occupied slots plus a cancel entry.
type Model struct {
	ui.Base
	ranges   presets.Ranges
	start    string
	end      string
	context  any
	active   bool
	selected int // 0..Slots-1 are slots, Slots is cancel
}

// New creates a new slot picker.
func New() Model {
	return Model{}
}

// Show displays the picker for saving start..end over one of ranges.
func (m *Model) Show(ranges presets.Ranges, start, end string, context any, width, height int) {
	m.ranges = ranges
	m.start = start
	m.end = end
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.selected = 0
}

// Active returns whether the picker is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < presets.Slots {
			m.selected++
		}
	case "1", "2", "3":
		n, _ := strconv.Atoi(key)
		return m, m.finish(n)
	case "enter":
		if m.selected == presets.Slots {
			return m, m.cancel()
		}
		return m, m.finish(m.selected + 1)
	case "esc", "q":
		return m, m.cancel()
	}
	return m, nil
}

func (m *Model) finish(slot int) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Slot: slot, Context: ctx})
	}
}

func (m *Model) cancel() tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Canceled: true, Context: ctx})
	}
}

var (
	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	title := titleStyle().Render("All range slots are full")
	message := fmt.Sprintf("Overwrite which slot with %s - %s?", m.start, m.end)

	lines := make([]string, 0, presets.Slots+1)
	for i := range presets.Slots {
		r := m.ranges[i]
		lines = append(lines, m.option(i, fmt.Sprintf("%d: %s - %s", i+1, r.Start, r.End)))
	}
	lines = append(lines, m.option(presets.Slots, "Cancel"))
	options := lipgloss.JoinVertical(lipgloss.Left, lines...)

	hint := hintStyle.Render("↑↓/jk navigate · 1-3 pick · enter select · esc cancel")
	return title + "\n\n" + message + "\n\n" + options + "\n\n" + hint
}

func (m *Model) option(i int, label string) string {
	if i == m.selected {
		return selectedOptionStyle.Render("> " + label)
	}
	return optionStyle.Render("  " + label)
}
