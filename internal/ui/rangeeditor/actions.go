package rangeeditor

import (
	"github.com/llehouerou/practicehard/internal/presets"
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Result is emitted when the editor closes.
type Result struct {
	Ranges   presets.Ranges
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "rangeeditor.result" }

// ActionMsg creates an action.Msg for a rangeeditor action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "rangeeditor", Action: a}
}
