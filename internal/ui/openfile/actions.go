package openfile

import (
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Result contains the chosen file.
type Result struct {
	Path     string
	Canceled bool // True if user pressed Escape
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "openfile.result" }

// ActionMsg creates an action.Msg for an openfile action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "openfile", Action: a}
}
