package slotpicker

import (
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Result contains the slot picker result.
type Result struct {
	Slot     int  // 1-indexed slot to overwrite
	Canceled bool // True if the user backed out
	Context  any  // User-provided context passed through
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "slotpicker.result" }

// ActionMsg creates an action.Msg for a slotpicker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "slotpicker", Action: a}
}
