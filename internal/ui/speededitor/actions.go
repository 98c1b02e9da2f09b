package speededitor

import (
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Result is emitted when the editor closes.
type Result struct {
	Speeds   []int
	Canceled bool
}

// ActionType implements action.Action.
func (a Result) ActionType() string { return "speededitor.result" }

// ActionMsg creates an action.Msg for a speededitor action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "speededitor", Action: a}
}
