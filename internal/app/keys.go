// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/keymap"
)

// helpContexts lists every binding group, in help order.
var helpContexts = []string{"global", "playback", "range", "presets", "inputs"}

// handleKeyMsg routes a key to the active popup, the range inputs, or the
// main bindings, in that order.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if handled, cmd := m.popups.HandleKey(msg); handled {
		return m, cmd
	}
	if m.inputsFocused {
		return m.handleInputKey(msg)
	}
	return m.dispatch(m.mainKeys.Resolve(msg.String()))
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch a := m.inputKeys.Resolve(msg.String()); a {
	case keymap.ActionApplyRange:
		return m.applyRange()
	case keymap.ActionNextField:
		cmd := m.switchField()
		return m, cmd
	case keymap.ActionLeaveInputs:
		m.blurInputs()
		return m, nil
	case "":
		cmd := m.updateFocusedInput(msg)
		return m, cmd
	default:
		return m.dispatch(a)
	}
}

// dispatch runs a main-context action.
func (m Model) dispatch(a keymap.Action) (Model, tea.Cmd) {
	if slot, ok := keymap.PresetSlot(a); ok {
		return m.applyPreset(slot)
	}

	switch a {
	case keymap.ActionQuit:
		m.saveSettings()
		return m, tea.Quit
	case keymap.ActionHelp:
		return m, m.popups.ShowHelp(helpContexts)
	case keymap.ActionOpenFile:
		return m, m.popups.ShowOpenFile(m.openDir(), m.recentEntries())

	case keymap.ActionPlayPause:
		m.togglePlay()
	case keymap.ActionSkipForward:
		m.skip(m.skipMs)
	case keymap.ActionSkipBack:
		m.skip(-m.skipMs)
	case keymap.ActionSkipIntervalUp:
		m.changeSkipInterval(1)
	case keymap.ActionSkipIntervalDown:
		m.changeSkipInterval(-1)
	case keymap.ActionResetPosition:
		m.session.ResetPosition()
	case keymap.ActionSpeedUp:
		m.setSpeed(m.session.Speed() + speedStep)
	case keymap.ActionSpeedDown:
		m.setSpeed(m.session.Speed() - speedStep)
	case keymap.ActionNextSpeedPreset:
		m.cycleSpeedPreset(1)
	case keymap.ActionPrevSpeedPreset:
		m.cycleSpeedPreset(-1)
	case keymap.ActionVolumeUp:
		m.setVolume(m.session.Volume() + volumeStep)
	case keymap.ActionVolumeDown:
		m.setVolume(m.session.Volume() - volumeStep)

	case keymap.ActionFocusRange:
		cmd := m.focusInputs()
		return m, cmd
	case keymap.ActionMarkStart:
		m.markStart()
	case keymap.ActionMarkEnd:
		m.markEnd()
	case keymap.ActionSaveRange:
		return m.saveRange()
	case keymap.ActionRestoreFull:
		return m.restoreFull()

	case keymap.ActionEditRanges:
		return m.editRanges()
	case keymap.ActionEditSpeeds:
		return m.editSpeeds()
	}
	return m, nil
}
