// Package keymap defines key bindings for the application.
package keymap

// Binding describes a key binding: the action it triggers, its keys and
// its help text.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "range", "presets", "inputs"
}

// Bindings contains all key bindings, used for dispatch and help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionOpenFile, []string{"o"}, "Open file", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionSkipBack, []string{"left"}, "Skip back", "playback"},
	{ActionSkipForward, []string{"right"}, "Skip forward", "playback"},
	{ActionSkipIntervalDown, []string{"<"}, "Shorter skip interval", "playback"},
	{ActionSkipIntervalUp, []string{">"}, "Longer skip interval", "playback"},
	{ActionResetPosition, []string{"0", "home"}, "Back to start", "playback"},
	{ActionSpeedUp, []string{"+", "="}, "Speed +5%", "playback"},
	{ActionSpeedDown, []string{"-"}, "Speed -5%", "playback"},
	{ActionNextSpeedPreset, []string{"p"}, "Next speed preset", "playback"},
	{ActionPrevSpeedPreset, []string{"P"}, "Previous speed preset", "playback"},
	{ActionVolumeUp, []string{"up"}, "Volume +5", "playback"},
	{ActionVolumeDown, []string{"down"}, "Volume -5", "playback"},

	// Loop range
	{ActionFocusRange, []string{"tab"}, "Edit loop range", "range"},
	{ActionMarkStart, []string{"["}, "Start at current position", "range"},
	{ActionMarkEnd, []string{"]"}, "End at current position", "range"},
	{ActionSaveRange, []string{"ctrl+s"}, "Save range preset", "range"},
	{ActionRestoreFull, []string{"r"}, "Restore full track", "range"},

	// Presets
	{ActionApplyPreset1, []string{"1"}, "Loop range preset 1", "presets"},
	{ActionApplyPreset2, []string{"2"}, "Loop range preset 2", "presets"},
	{ActionApplyPreset3, []string{"3"}, "Loop range preset 3", "presets"},
	{ActionEditRanges, []string{"e"}, "Edit range presets", "presets"},
	{ActionEditSpeeds, []string{"E"}, "Edit speed presets", "presets"},

	// Range inputs focused
	{ActionApplyRange, []string{"enter"}, "Go: loop the range", "inputs"},
	{ActionNextField, []string{"tab", "shift+tab"}, "Switch start/end", "inputs"},
	{ActionLeaveInputs, []string{"esc"}, "Leave range inputs", "inputs"},
	{ActionSaveRange, []string{"ctrl+s"}, "Save range preset", "inputs"},
	{ActionMarkStart, []string{"["}, "Start at current position", "inputs"},
	{ActionMarkEnd, []string{"]"}, "End at current position", "inputs"},
	{ActionQuit, []string{"ctrl+c"}, "Quit application", "inputs"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Main returns the bindings active when no input has focus.
func Main() []Binding {
	var result []Binding
	for _, ctx := range []string{"global", "playback", "range", "presets"} {
		result = append(result, ByContext(ctx)...)
	}
	return result
}
