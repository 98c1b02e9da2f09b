package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Main())

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"space", ActionPlayPause},
		{"left", ActionSkipBack},
		{"tab", ActionFocusRange},
		{"1", ActionApplyPreset1},
		{"E", ActionEditSpeeds},
		{"enter", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.key))
		})
	}
}

func TestResolver_InputsContext(t *testing.T) {
	r := NewResolver(ByContext("inputs"))

	assert.Equal(t, ActionApplyRange, r.Resolve("enter"))
	assert.Equal(t, ActionNextField, r.Resolve("tab"))
	assert.Equal(t, ActionNextField, r.Resolve("shift+tab"))
	assert.Equal(t, ActionLeaveInputs, r.Resolve("esc"))
	assert.Equal(t, ActionQuit, r.Resolve("ctrl+c"))
	// Typing must reach the text inputs
	for _, k := range []string{"q", "0", "1", ":", " "} {
		assert.Empty(t, r.Resolve(k), k)
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionVolumeUp, []string{"k", "up"}, "Volume up", "playback"},
		{ActionSpeedUp, []string{"k"}, "Speed up", "playback"},
	})
	assert.Equal(t, ActionSpeedUp, r.Resolve("k"))
	assert.Equal(t, ActionVolumeUp, r.Resolve("up"))
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(Bindings)

	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit))
	assert.Equal(t, []string{"ctrl+s"}, r.KeysFor(ActionSaveRange))
	assert.Equal(t, []string{"tab", "shift+tab"}, r.KeysFor(ActionNextField))
	assert.Nil(t, r.KeysFor(Action("missing")))
}

func TestResolver_Empty(t *testing.T) {
	r := NewResolver(nil)
	assert.Empty(t, r.Resolve("q"))
	assert.Nil(t, r.KeysFor(ActionQuit))
}
