package helpbindings

import (
	"github.com/llehouerou/practicehard/internal/ui/action"
)

// Close asks the app to dismiss the help popup.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "help.close" }

// ActionMsg wraps a help action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "help", Action: a}
}
