package rangeeditor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui/action"
	"github.com/llehouerou/practicehard/internal/ui/testutil"
)

func newEditor(ranges presets.Ranges) (*Model, *testutil.PopupHarness) {
	m := New("Range presets", ranges)
	m.SetSize(80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	require.True(t, ok)
	r, ok := msg.Action.(Result)
	require.True(t, ok)
	return r
}

func typeText(h *testutil.PopupHarness, s string) {
	for _, r := range s {
		h.SendKey(string(r))
	}
}

func TestRangeEditor_SaveUnchanged(t *testing.T) {
	in := presets.Ranges{{Start: "0:10", End: "0:20"}}
	_, h := newEditor(in)

	r := getResult(t, h.SendEnter())

	assert.False(t, r.Canceled)
	assert.Equal(t, in, r.Ranges)
}

func TestRangeEditor_FillEmptySlot(t *testing.T) {
	m, h := newEditor(presets.Ranges{})

	typeText(h, "30")
	h.SendTab()
	typeText(h, "1:00")
	assert.Equal(t, 1, m.Focused())

	r := getResult(t, h.SendEnter())

	assert.Equal(t, presets.RangePreset{Start: "30", End: "1:00"}, r.Ranges[0])
	assert.True(t, r.Ranges[1].Empty())
}

func TestRangeEditor_InvalidKeepsEditorOpen(t *testing.T) {
	_, h := newEditor(presets.Ranges{})

	typeText(h, "abc")
	cmd := h.SendEnter()

	assert.Nil(t, cmd)
	assert.True(t, h.ViewContains("slot 1: invalid start"))
}

func TestRangeEditor_HalfFilledSlotRejected(t *testing.T) {
	_, h := newEditor(presets.Ranges{})

	typeText(h, "0:10")

	assert.Nil(t, h.SendEnter())
	assert.True(t, h.ViewContains("invalid end"))
}

func TestRangeEditor_ClearSlot(t *testing.T) {
	_, h := newEditor(presets.Ranges{{Start: "0:10", End: "0:20"}, {Start: "1:00", End: "1:10"}})

	h.SendSpecialKey(tea.KeyCtrlD)
	r := getResult(t, h.SendEnter())

	assert.True(t, r.Ranges[0].Empty())
	assert.Equal(t, "1:00", r.Ranges[1].Start)
}

func TestRangeEditor_FocusWraps(t *testing.T) {
	m, h := newEditor(presets.Ranges{})

	h.SendUp()
	assert.Equal(t, fieldCount-2, m.Focused())

	h.SendDown()
	assert.Equal(t, 0, m.Focused())

	h.SendSpecialKey(tea.KeyShiftTab)
	assert.Equal(t, fieldCount-1, m.Focused())
}

func TestRangeEditor_Cancel(t *testing.T) {
	_, h := newEditor(presets.Ranges{})

	r := getResult(t, h.SendEscape())

	assert.True(t, r.Canceled)
}

func TestRangeEditor_View(t *testing.T) {
	_, h := newEditor(presets.Ranges{{Start: "0:10", End: "0:20"}})

	assert.True(t, h.ViewContains("Range presets"))
	assert.True(t, h.ViewContains("Start"))
	assert.True(t, h.ViewContains("1:"))
	assert.True(t, h.ViewContains("0:20"))
}
