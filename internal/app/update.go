// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/session"
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if tick := next.startTick(); tick != nil {
		cmd = tea.Batch(cmd, tick)
	}
	next.publish()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.popups.SetSize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.ticking = false
		m.session.Tick()
		return m, nil

	case EngineEventMsg:
		m.session.Dispatch(msg.Event)
		return m, WatchEngineEvents(m.events)

	case EngineClosedMsg:
		m.logger.Debug().Msg("engine event channel closed")
		return m, nil

	case OpenFileMsg:
		return m.openFile(msg.Path)

	case CoverLoadedMsg:
		return m.handleCoverLoaded(msg), nil

	case RemoteMsg:
		return m.handleRemote(msg.Command), nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg), nil
	}

	// Cursor blinks and other component messages
	cmds := []tea.Cmd{m.popups.Forward(msg)}
	if m.inputsFocused {
		cmds = append(cmds, m.updateFocusedInput(msg))
	}
	return m, tea.Batch(cmds...)
}

// startTick keeps one refresh pending while a track is loaded, paused
// or not, so the display follows the engine.
func (m *Model) startTick() tea.Cmd {
	if m.ticking || m.session.Mode() == session.Idle {
		return nil
	}
	m.ticking = true
	return TickCmd(m.cfg.Tick())
}

func (m Model) handleCoverLoaded(msg CoverLoadedMsg) Model {
	if msg.Path != m.session.Source() {
		return m
	}
	if msg.Err != nil {
		m.logger.Debug().Err(msg.Err).Str("path", msg.Path).Msg("no cover")
		m.cover = ""
		return m
	}
	m.cover = msg.View
	return m
}
