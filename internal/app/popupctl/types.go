// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	OpenFile
	RangeEditor
	SpeedEditor
	SlotPicker
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Help,
	SlotPicker,
	RangeEditor,
	SpeedEditor,
	OpenFile,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	OpenFile,
	SpeedEditor,
	RangeEditor,
	SlotPicker,
	Help,
}
