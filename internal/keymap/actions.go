// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit     Action = "quit"
	ActionHelp     Action = "help"
	ActionOpenFile Action = "open_file"

	// Playback actions
	ActionPlayPause        Action = "play_pause"
	ActionSkipForward      Action = "skip_forward"
	ActionSkipBack         Action = "skip_back"
	ActionSkipIntervalUp   Action = "skip_interval_up"
	ActionSkipIntervalDown Action = "skip_interval_down"
	ActionResetPosition    Action = "reset_position"
	ActionSpeedUp          Action = "speed_up"
	ActionSpeedDown        Action = "speed_down"
	ActionNextSpeedPreset  Action = "next_speed_preset"
	ActionPrevSpeedPreset  Action = "prev_speed_preset"
	ActionVolumeUp         Action = "volume_up"
	ActionVolumeDown       Action = "volume_down"

	// Loop range actions
	ActionFocusRange   Action = "focus_range"
	ActionApplyRange   Action = "apply_range"
	ActionSaveRange    Action = "save_range"
	ActionMarkStart    Action = "mark_start"
	ActionMarkEnd      Action = "mark_end"
	ActionRestoreFull  Action = "restore_full"
	ActionLeaveInputs  Action = "leave_inputs"
	ActionNextField    Action = "next_field"
	ActionApplyPreset1 Action = "apply_preset_1"
	ActionApplyPreset2 Action = "apply_preset_2"
	ActionApplyPreset3 Action = "apply_preset_3"

	// Preset editing
	ActionEditRanges Action = "edit_ranges"
	ActionEditSpeeds Action = "edit_speeds"
)

// PresetSlot returns the 0-based range slot of an apply-preset action.
func PresetSlot(a Action) (int, bool) {
	switch a {
	case ActionApplyPreset1:
		return 0, true
	case ActionApplyPreset2:
		return 1, true
	case ActionApplyPreset3:
		return 2, true
	}
	return 0, false
}
