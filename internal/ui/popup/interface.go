package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the player view. Only the top
// popup receives keys.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View returns the content only; the frame is drawn by the caller.
	View() string
	SetSize(width, height int)
}
