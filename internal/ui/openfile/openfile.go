// Package openfile provides the open-file popup: a path prompt with tab
// completion above the list of recently opened files.
package openfile

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/practicehard/internal/player"
	"github.com/llehouerou/practicehard/internal/ui"
	"github.com/llehouerou/practicehard/internal/ui/popup"
	"github.com/llehouerou/practicehard/internal/ui/render"
	"github.com/llehouerou/practicehard/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// maxCandidates is how many completion candidates are listed.
const maxCandidates = 8

func inputStyle() lipgloss.Style {
	return styles.T().S().Base
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Entry is a recently opened file.
type Entry struct {
	Path     string
	Label    string
	OpenedAt time.Time
}

// Model is the open-file popup.
type Model struct {
	ui.Base
	text       string
	recent     []Entry
	selected   int // -1 means the prompt
	candidates []string
	now        func() time.Time
}

// New creates a new open-file model.
func New() Model {
	return Model{selected: -1, now: time.Now}
}

// Start shows the prompt, prefilled with dir, over the recent files.
func (m *Model) Start(dir string, recent []Entry, width, height int) {
	m.text = ""
	if dir != "" {
		m.text = strings.TrimRight(dir, string(filepath.Separator)) + string(filepath.Separator)
	}
	m.recent = recent
	m.selected = -1
	m.candidates = nil
	m.SetSize(width, height)
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.text = ""
	m.recent = nil
	m.selected = -1
	m.candidates = nil
}

// Text returns the prompt contents.
func (m *Model) Text() string {
	return m.text
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

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg {
			return ActionMsg(Result{Canceled: true})
		}

	case "enter":
		path := expandHome(strings.TrimSpace(m.text))
		if m.selected >= 0 {
			path = m.recent[m.selected].Path
		}
		if path == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return ActionMsg(Result{Path: path})
		}

	case "up":
		if m.selected >= 0 {
			m.selected--
		}
	case "down":
		if m.selected < len(m.recent)-1 {
			m.selected++
		}

	case "tab":
		m.complete()

	case "ctrl+u":
		m.text = ""
		m.edited()

	case "backspace":
		if m.text != "" {
			r := []rune(m.text)
			m.text = string(r[:len(r)-1])
		}
		m.edited()

	default:
		if keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace {
			m.text += string(keyMsg.Runes)
			if keyMsg.Type == tea.KeySpace && len(keyMsg.Runes) == 0 {
				m.text += " "
			}
			m.edited()
		}
	}
	return m, nil
}

func (m *Model) edited() {
	m.selected = -1
	m.candidates = nil
}

// complete extends the prompt to the longest common prefix of the
// matching directories and audio files.
func (m *Model) complete() {
	m.selected = -1
	expanded := expandHome(m.text)
	dir, prefix := filepath.Split(expanded)
	if !strings.HasSuffix(m.text, prefix) {
		return
	}
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.candidates = nil
		return
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) || strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		switch {
		case isDir:
			names = append(names, name+string(filepath.Separator))
		case player.IsSupported(name):
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		m.candidates = nil
		return
	}

	common := names[0]
	for _, n := range names[1:] {
		common = commonPrefix(common, n)
	}
	base := m.text[:len(m.text)-len(prefix)]
	m.text = base + common
	if len(names) == 1 {
		m.candidates = nil
		return
	}
	m.candidates = names
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	inner := max(20, m.Width()*60/100-8)

	var b strings.Builder
	b.WriteString(titleStyle().Render("Open file"))
	b.WriteString("\n\n")

	cursor := "█"
	prompt := "> "
	if m.selected >= 0 {
		cursor = ""
	}
	b.WriteString(inputStyle().Render(prompt+render.TruncateLeft(m.text, inner-3)) + cursor)
	b.WriteString("\n")

	if len(m.candidates) > 0 {
		b.WriteString("\n")
		shown := m.candidates
		if len(shown) > maxCandidates {
			shown = shown[:maxCandidates]
		}
		for _, c := range shown {
			b.WriteString(t.S().Muted.Render("  " + render.TruncateAndPad(render.Sanitize(c), inner-2)))
			b.WriteString("\n")
		}
		if extra := len(m.candidates) - len(shown); extra > 0 {
			b.WriteString(t.S().Subtle.Render("  +" + humanize.Comma(int64(extra)) + " more"))
			b.WriteString("\n")
		}
	}

	if len(m.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(t.S().Muted.Render("Recent"))
		b.WriteString("\n")
		for i, e := range m.recent {
			b.WriteString(m.recentLine(i, e, inner))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle().Render("Tab: complete, ↑↓: recent, Enter: open, Esc: cancel"))
	return b.String()
}

func (m *Model) recentLine(i int, e Entry, width int) string {
	label := e.Label
	if label == "" {
		label = filepath.Base(e.Path)
	}
	when := ""
	if !e.OpenedAt.IsZero() {
		when = humanize.RelTime(e.OpenedAt, m.now(), "ago", "from now")
	}
	text := render.TruncateAndPad(render.Sanitize(label), max(1, width-len(when)-3)) + " " + when
	if i == m.selected {
		return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true).Render("> " + text)
	}
	return "  " + text
}
