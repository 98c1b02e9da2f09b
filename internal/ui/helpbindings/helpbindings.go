// Package helpbindings shows the key bindings in a scrollable popup.
package helpbindings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/practicehard/internal/keymap"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// sections lists the binding contexts in display order with their titles.
var sections = []struct{ context, title string }{
	{"global", "General"},
	{"playback", "Playback"},
	{"range", "Loop Range"},
	{"presets", "Presets"},
	{"inputs", "While Editing the Range"},
}

// chrome is the room taken by the title, the footer and the popup border.
const chrome = 8

// keyNames spells out keys that are unreadable as typed.
var keyNames = map[string]string{
	" ":     "space",
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

// Model is the help popup.
type Model struct {
	ui.Base
	lines []string
	width int // widest line
	view  viewport.Model
}

// New creates an empty help popup.
func New() Model {
	return Model{view: viewport.New(0, 0)}
}

// SetContexts selects the binding groups to list.
func (m *Model) SetContexts(contexts []string) {
	m.lines = buildLines(contexts)
	m.width = 0
	for _, l := range m.lines {
		m.width = max(m.width, lipgloss.Width(l))
	}
	m.view.SetContent(strings.Join(m.lines, "\n"))
	m.view.GotoTop()
	m.resize()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.resize()
}

func (m *Model) resize() {
	m.view.Width = m.width
	m.view.Height = max(1, min(len(m.lines), m.Height()-chrome))
}

func buildLines(contexts []string) []string {
	t := styles.T()
	s := t.S()
	header := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	var groups [][]keymap.Binding
	keyWidth := 0
	for _, sec := range sections {
		if !slices.Contains(contexts, sec.context) {
			continue
		}
		bindings := keymap.ByContext(sec.context)
		for _, b := range bindings {
			keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b.Keys)))
		}
		groups = append(groups, bindings)
	}

	var lines []string
	gi := 0
	for _, sec := range sections {
		if !slices.Contains(contexts, sec.context) {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, header.Render(sec.title))
		for _, b := range groups[gi] {
			label := fmt.Sprintf("%-*s", keyWidth, keyLabel(b.Keys))
			lines = append(lines, "  "+key.Render(label)+"  "+s.Base.Render(b.Description))
		}
		gi++
	}
	return lines
}

// keyLabel joins the distinct display names of keys.
func keyLabel(keys []string) string {
	var names []string
	for _, k := range keys {
		if n, ok := keyNames[k]; ok {
			k = n
		}
		if !slices.Contains(names, k) {
			names = append(names, k)
		}
	}
	return strings.Join(names, "/")
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "?", "esc", "q":
			return m, func() tea.Msg { return ActionMsg(Close{}) }
		}
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// Offset is the index of the first visible line.
func (m *Model) Offset() int {
	return m.view.YOffset
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	footer := "?/esc: close"
	if len(m.lines) > m.view.Height {
		footer = fmt.Sprintf("↑↓ scroll (%d%%)  ", int(m.view.ScrollPercent()*100)) + footer
	}
	return s.Title.Render("Keys") + "\n\n" + m.view.View() + "\n\n" + s.Subtle.Render(footer)
}
