package helpbindings

import (
	"github.com/llehouerou/dropwidgets/internal/ui/action"
)

// Close signals the help panel should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

// ActionMsg creates an action.Msg for a help panel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
