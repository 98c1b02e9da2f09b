// Package action carries popup results back to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a result produced by a popup, such as a confirmed range.
type Action interface {
	// ActionType names the action in logs, e.g. "rangeeditor.result".
	ActionType() string
}

// Msg is the tea message a popup returns; Source names the popup.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
