// internal/app/handlers.go
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/app/popupctl"
	"github.com/llehouerou/practicehard/internal/errmsg"
	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui/action"
	"github.com/llehouerou/practicehard/internal/ui/helpbindings"
	"github.com/llehouerou/practicehard/internal/ui/openfile"
	"github.com/llehouerou/practicehard/internal/ui/rangeeditor"
	"github.com/llehouerou/practicehard/internal/ui/slotpicker"
	"github.com/llehouerou/practicehard/internal/ui/speededitor"
)

// handleAction routes popup results.
func (m Model) handleAction(msg action.Msg) (Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.popups.Hide(popupctl.Help)

	case openfile.Result:
		m.popups.Hide(popupctl.OpenFile)
		if !a.Canceled {
			return m.openFile(a.Path)
		}

	case slotpicker.Result:
		m.popups.Hide(popupctl.SlotPicker)
		return m.handleSlotPicked(a), nil

	case rangeeditor.Result:
		m.popups.Hide(popupctl.RangeEditor)
		if !a.Canceled {
			return m.saveRangePresets(a.Ranges), nil
		}

	case speededitor.Result:
		m.popups.Hide(popupctl.SpeedEditor)
		if !a.Canceled {
			return m.saveSpeedPresets(a.Speeds), nil
		}
	}
	return m, nil
}

func (m Model) handleSlotPicked(r slotpicker.Result) Model {
	pending, ok := r.Context.(pendingRange)
	if !ok {
		return m
	}
	if r.Canceled {
		m.setStatus("Range preset not saved")
		return m
	}
	idx, err := m.presets.Overwrite(pending.Key, r.Slot, pending.Start, pending.End)
	return m.rangeSaved(pending.Key, idx, err)
}

func (m Model) editRanges() (Model, tea.Cmd) {
	if m.trackKey == "" {
		m.setStatus("Open a file first (o)")
		return m, nil
	}
	return m, m.popups.ShowRangeEditor("Range presets: "+m.trackKey, m.ranges)
}

func (m Model) editSpeeds() (Model, tea.Cmd) {
	if m.trackKey == "" {
		m.setStatus("Open a file first (o)")
		return m, nil
	}
	return m, m.popups.ShowSpeedEditor("Speed presets: "+m.trackKey, m.speeds)
}

func (m Model) saveRangePresets(ranges presets.Ranges) Model {
	err := m.presets.SetRangePresets(m.trackKey, ranges)
	if err != nil && !errors.Is(err, presets.ErrPersistence) {
		m.setStatus("Invalid range presets, not saved")
		return m
	}
	if err != nil {
		m.logger.Warn().Err(err).Str("key", m.trackKey).Msg("write presets")
		m.fail(errmsg.OpPresetSave, "", err)
	} else {
		m.setStatus("Range presets saved")
	}
	m.refreshPresets()
	return m
}

func (m Model) saveSpeedPresets(speeds []int) Model {
	err := m.presets.SetSpeedPresets(m.trackKey, speeds)
	if err != nil && !errors.Is(err, presets.ErrPersistence) {
		m.setStatus(fmt.Sprintf("Speed presets must be %d-%d%%", presets.MinSpeed, presets.MaxSpeed))
		return m
	}
	if err != nil {
		m.logger.Warn().Err(err).Str("key", m.trackKey).Msg("write presets")
		m.fail(errmsg.OpPresetSave, "", err)
	} else {
		m.setStatus("Speed presets saved")
	}
	m.refreshPresets()
	return m
}

// refreshPresets re-reads the current track's presets and keeps the speed
// within the new ceiling.
func (m *Model) refreshPresets() {
	m.speeds, m.ranges = m.presets.Get(m.trackKey)
	if m.speedIdx >= len(m.speeds) {
		m.speedIdx = -1
	}
	if ceiling := m.speedCeiling(); m.session.Speed() > ceiling {
		m.session.SetSpeed(ceiling)
		m.saveSettings()
	}
}
