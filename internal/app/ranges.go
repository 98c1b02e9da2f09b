// internal/app/ranges.go
package app

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/practicehard/internal/errmsg"
	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/session"
	"github.com/llehouerou/practicehard/internal/timecode"
	"github.com/llehouerou/practicehard/internal/timeline"
)

func (m *Model) focusInputs() tea.Cmd {
	m.inputsFocused = true
	m.focusEnd = false
	m.endInput.Blur()
	return m.startInput.Focus()
}

func (m *Model) blurInputs() {
	m.inputsFocused = false
	m.startInput.Blur()
	m.endInput.Blur()
}

func (m *Model) switchField() tea.Cmd {
	m.focusEnd = !m.focusEnd
	if m.focusEnd {
		m.startInput.Blur()
		return m.endInput.Focus()
	}
	m.endInput.Blur()
	return m.startInput.Focus()
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focusEnd {
		m.endInput, cmd = m.endInput.Update(msg)
	} else {
		m.startInput, cmd = m.startInput.Update(msg)
	}
	return cmd
}

func (m *Model) rangeText() (string, string) {
	return strings.TrimSpace(m.startInput.Value()), strings.TrimSpace(m.endInput.Value())
}

// applyRange loops the range typed in the inputs. Unparseable or
// out-of-bounds input changes nothing.
func (m Model) applyRange() (Model, tea.Cmd) {
	start, end := m.rangeText()
	err := m.session.ApplyRange(start, end)
	switch {
	case err == nil:
		r, _ := m.session.Slice()
		m.setStatus(fmt.Sprintf("Looping %s - %s", timecode.FormatClock(r.Start), timecode.FormatClock(r.End)))
		m.blurInputs()
		return m, nil
	case errors.Is(err, timecode.ErrMalformed), errors.Is(err, timeline.ErrInvalidRange):
		m.setStatus("Invalid loop range")
		return m, nil
	case errors.Is(err, session.ErrNoMedia):
		m.setStatus("Open a file first (o)")
		return m, nil
	case errors.Is(err, session.ErrScrubbing):
		return m, nil
	}
	cmd := m.report(errmsg.OpRangeApply, start+" - "+end, err)
	return m, cmd
}

func (m Model) restoreFull() (Model, tea.Cmd) {
	if err := m.session.RestoreFullTrack(); err != nil {
		if errors.Is(err, session.ErrNoMedia) {
			return m, nil
		}
		cmd := m.report(errmsg.OpRangeRestore, "", err)
		return m, cmd
	}
	m.setStatus("Full track")
	return m, nil
}

func (m *Model) markStart() {
	if m.session.Mode() == session.Idle {
		return
	}
	m.startInput.SetValue(timecode.FormatClock(m.session.DisplayPosition()))
	m.startInput.CursorEnd()
}

func (m *Model) markEnd() {
	if m.session.Mode() == session.Idle {
		return
	}
	m.endInput.SetValue(timecode.FormatClock(m.session.DisplayPosition()))
	m.endInput.CursorEnd()
}

// applyPreset loops range preset slot (0-based) of the current track.
func (m Model) applyPreset(slot int) (Model, tea.Cmd) {
	if m.trackKey == "" {
		m.setStatus("Open a file first (o)")
		return m, nil
	}
	r := m.ranges[slot]
	if r.Empty() {
		m.setStatus(fmt.Sprintf("Range preset %d is empty", slot+1))
		return m, nil
	}
	m.startInput.SetValue(r.Start)
	m.endInput.SetValue(r.End)
	return m.applyRange()
}

// saveRange stores the typed range in the first free slot, or asks which
// slot to overwrite when all are taken.
func (m Model) saveRange() (Model, tea.Cmd) {
	if m.trackKey == "" {
		m.setStatus("Open a file first (o)")
		return m, nil
	}
	start, end := m.rangeText()
	idx, err := m.presets.SaveRange(m.trackKey, start, end, nil)
	if errors.Is(err, presets.ErrSlotsFull) {
		pending := pendingRange{Key: m.trackKey, Start: start, End: end}
		return m, m.popups.ShowSlotPicker(m.ranges, start, end, pending)
	}
	return m.rangeSaved(m.trackKey, idx, err), nil
}

func (m Model) rangeSaved(key string, idx int, err error) Model {
	switch {
	case err == nil:
		m.setStatus(fmt.Sprintf("Saved range preset %d", idx+1))
	case errors.Is(err, timecode.ErrMalformed):
		m.setStatus("Invalid loop range, not saved")
	case errors.Is(err, presets.ErrPersistence):
		m.logger.Warn().Err(err).Str("key", key).Msg("write presets")
		m.fail(errmsg.OpPresetSave, "", err)
	default:
		m.fail(errmsg.OpPresetSave, "", err)
	}
	if key == m.trackKey {
		m.refreshPresets()
	}
	return m
}
