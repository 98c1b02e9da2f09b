// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/app/popupctl"
)

// handleMouseMsg turns a left-button drag on the seek bar into the
// session's scrub protocol: press begins, motion moves, release seeks.
func (m Model) handleMouseMsg(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.popups.ActivePopup() != popupctl.None {
			return m
		}
		snap := m.session.Snapshot()
		layout := m.seekLayout()
		if msg.Y != m.seekRow() || !layout.Contains(msg.X) || !snap.TransportEnabled {
			return m
		}
		m.session.SeekBegin()
		m.session.SeekMove(layout.PositionAt(msg.X, snap.Duration))
		m.dragging = true

	case tea.MouseActionMotion:
		if m.dragging {
			m.session.SeekMove(m.seekLayout().PositionAt(msg.X, m.session.FullDuration()))
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.session.SeekRelease()
			m.dragging = false
		}
	}
	return m
}
