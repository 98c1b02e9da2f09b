package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/ui/popup"
)

// specialKeys maps key names to their bubbletea key types.
var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"delete":    tea.KeyDelete,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+u":    tea.KeyCtrlU,
	"space":     tea.KeySpace,
}

// PopupHarness feeds keys to a popup and records the commands it returns.
type PopupHarness struct {
	p    popup.Popup
	cmds []tea.Cmd
}

// NewPopupHarness wraps p, keeping the command returned by Init.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{p: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the wrapped popup.
func (h *PopupHarness) Popup() popup.Popup { return h.p }

// SetSize resizes the popup.
func (h *PopupHarness) SetSize(width, height int) { h.p.SetSize(width, height) }

// View renders the popup.
func (h *PopupHarness) View() string { return h.p.View() }

// Send delivers msg to the popup.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.p, cmd = h.p.Update(msg)
	return h.record(cmd)
}

// SendKey types key: a name from specialKeys, or literal runes.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	if t, ok := specialKeys[key]; ok {
		return h.SendSpecialKey(t)
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key.
func (h *PopupHarness) SendSpecialKey(t tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: t})
}

func (h *PopupHarness) SendEnter() tea.Cmd  { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendUp() tea.Cmd     { return h.SendSpecialKey(tea.KeyUp) }
func (h *PopupHarness) SendDown() tea.Cmd   { return h.SendSpecialKey(tea.KeyDown) }
func (h *PopupHarness) SendTab() tea.Cmd    { return h.SendSpecialKey(tea.KeyTab) }

// Commands returns the recorded commands.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// ClearCommands forgets the recorded commands.
func (h *PopupHarness) ClearCommands() { h.cmds = nil }

// LastCommand is the most recent recorded command, nil if none.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ExecuteCmd runs cmd, tolerating nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ExecuteAndSend runs cmd and feeds its message back to the popup.
func (h *PopupHarness) ExecuteAndSend(cmd tea.Cmd) (tea.Msg, tea.Cmd) {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil, nil
	}
	return msg, h.Send(msg)
}

// ViewContains reports whether the plain-text view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return strings.Contains(StripANSI(h.View()), substr)
}

// AssertViewContains returns a failure message, or "" when substr is shown.
func (h *PopupHarness) AssertViewContains(substr string) string {
	if h.ViewContains(substr) {
		return ""
	}
	return "expected view to contain " + substr + ", got:\n" + StripANSI(h.View())
}

// AssertViewNotContains returns a failure message, or "" when substr is absent.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	if !h.ViewContains(substr) {
		return ""
	}
	return "expected view not to contain " + substr
}
