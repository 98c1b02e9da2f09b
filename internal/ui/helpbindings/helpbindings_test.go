package helpbindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/practicehard/internal/ui/action"
	"github.com/llehouerou/practicehard/internal/ui/testutil"
)

func newHelp(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func TestClose(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			_, h := newHelp([]string{"global"}, 30)
			h.SendKey(key)

			msg, ok := testutil.ExecuteCmd(h.LastCommand()).(action.Msg)
			require.True(t, ok)
			assert.IsType(t, Close{}, msg.Action)
		})
	}
}

func TestView_ListsSelectedSections(t *testing.T) {
	_, h := newHelp([]string{"global", "range"}, 40)

	assert.Empty(t, h.AssertViewContains("Keys"))
	assert.Empty(t, h.AssertViewContains("General"))
	assert.Empty(t, h.AssertViewContains("Open file"))
	assert.Empty(t, h.AssertViewContains("Loop Range"))
	assert.Empty(t, h.AssertViewContains("Save range preset"))
	assert.Empty(t, h.AssertViewNotContains("Playback"))
	assert.Empty(t, h.AssertViewNotContains("scroll"))
}

func TestView_ReadableKeyNames(t *testing.T) {
	_, h := newHelp([]string{"playback"}, 40)

	assert.Empty(t, h.AssertViewContains("space"))
	assert.Empty(t, h.AssertViewContains("←"))
	assert.Empty(t, h.AssertViewContains("+/="))
}

func TestScroll(t *testing.T) {
	m, h := newHelp([]string{"global", "playback", "range", "presets", "inputs"}, 16)
	require.Equal(t, 0, m.Offset())
	assert.True(t, h.ViewContains("scroll"))

	h.SendKey("j")
	h.SendDown()
	assert.Equal(t, 2, m.Offset())

	h.SendKey("k")
	assert.Equal(t, 1, m.Offset())

	for range 100 {
		h.SendKey("j")
	}
	last := m.Offset()
	h.SendKey("j")
	assert.Equal(t, last, m.Offset())
	assert.True(t, h.ViewContains("100%"))
}

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "space", keyLabel([]string{" ", "space"}))
	assert.Equal(t, "q/ctrl+c", keyLabel([]string{"q", "ctrl+c"}))
	assert.Equal(t, "↑", keyLabel([]string{"up"}))
}

func TestEmptySizeRendersNothing(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})
	assert.Empty(t, m.View())
}
