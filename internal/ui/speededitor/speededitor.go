// Package speededitor edits the list of speed presets of a track.
package speededitor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// NewValue is the speed of a preset added to an empty list.
const NewValue = 100

// Model is a cursor over the speed values.
type Model struct {
	ui.Base
	title  string
	values []int
	cursor int
	typed  string // digits typed since the cursor last moved
}

// New creates an editor over a copy of values.
func New(title string, values []int) Model {
	return Model{title: title, values: slices.Clone(values)}
}

// Values returns the current list.
func (m *Model) Values() []int {
	return slices.Clone(m.values)
}

// Cursor returns the selected index.
func (m *Model) Cursor() int {
	return m.cursor
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "esc":
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true})
		}
	case "enter":
		values := m.Values()
		if values == nil {
			values = []int{}
		}
		return m, func() tea.Msg {
			return ActionMsg(Result{Speeds: values})
		}
	case "up", "k":
		m.moveTo(m.cursor - 1)
	case "down", "j":
		m.moveTo(m.cursor + 1)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "H", "shift+left":
		m.adjust(-10)
	case "L", "shift+right":
		m.adjust(10)
	case "a":
		m.add()
	case "d", "delete":
		m.remove()
	case "backspace":
		if m.typed != "" {
			m.typed = m.typed[:len(m.typed)-1]
			m.setTyped()
		}
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			m.typed += key
			m.setTyped()
		}
	}
	return m, nil
}

func (m *Model) moveTo(i int) {
	if len(m.values) == 0 {
		return
	}
	m.cursor = max(0, min(i, len(m.values)-1))
	m.typed = ""
}

func (m *Model) adjust(delta int) {
	if len(m.values) == 0 {
		return
	}
	m.values[m.cursor] = clampSpeed(m.values[m.cursor] + delta)
	m.typed = ""
}

// add inserts a copy of the selected value after it.
func (m *Model) add() {
	v := NewValue
	if len(m.values) > 0 {
		v = m.values[m.cursor]
		m.values = slices.Insert(m.values, m.cursor+1, v)
		m.cursor++
	} else {
		m.values = []int{v}
		m.cursor = 0
	}
	m.typed = ""
}

func (m *Model) remove() {
	if len(m.values) == 0 {
		return
	}
	m.values = slices.Delete(m.values, m.cursor, m.cursor+1)
	if m.cursor >= len(m.values) {
		m.cursor = max(0, len(m.values)-1)
	}
	m.typed = ""
}

// setTyped replaces the selected value with the typed digits, keeping at
// most three of them.
func (m *Model) setTyped() {
	if len(m.values) == 0 {
		m.values = []int{NewValue}
		m.cursor = 0
	}
	if len(m.typed) > 3 {
		m.typed = m.typed[len(m.typed)-3:]
	}
	if m.typed == "" {
		return
	}
	n, err := strconv.Atoi(m.typed)
	if err != nil {
		return
	}
	m.values[m.cursor] = clampSpeed(n)
}

func clampSpeed(v int) int {
	return max(presets.MinSpeed, min(v, presets.MaxSpeed))
}

// View implements popup.Popup.
func (m *Model) View() string {
	t := styles.T()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title))
	b.WriteString("\n\n")

	if len(m.values) == 0 {
		b.WriteString(t.S().Muted.Render("  (no speed presets)"))
		b.WriteString("\n")
	}
	for i, v := range m.values {
		line := fmt.Sprintf("%3d%%", v)
		if i == m.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("←→ ±1 · H/L ±10 · 0-9 type · a add · d remove"))
	b.WriteString("\n")
	b.WriteString(t.S().Subtle.Render("enter save · esc cancel"))
	return b.String()
}
