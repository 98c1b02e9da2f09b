// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// File operations
	OpFileOpen  Op = "open file"
	OpFileLoad  Op = "load file"
	OpCoverLoad Op = "load cover art"

	// Loop operations
	OpRangeApply   Op = "apply loop range"
	OpRangeRestore Op = "restore full track"
	OpSliceExport  Op = "export slice"

	// Preset operations
	OpPresetLoad Op = "load presets"
	OpPresetSave Op = "save preset"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// State
	OpStateSave Op = "save settings"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
