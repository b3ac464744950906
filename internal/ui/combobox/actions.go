package combobox

import (
	"github.com/llehouerou/dropwidgets/internal/ui/action"
)

// Change reports a new value, typed or picked.
type Change[T comparable] struct {
	Value Value[T]
	Typed bool // True while the user is typing free text
}

// ActionType implements action.Action.
func (Change[T]) ActionType() string { return "combobox.change" }

// Select reports an option picked from the list or with the arrow keys.
type Select[T comparable] struct {
	Item T
}

// ActionType implements action.Action.
func (Select[T]) ActionType() string { return "combobox.select" }

// Toggle reports the tray opening or closing.
type Toggle struct {
	Open bool
}

// ActionType implements action.Action.
func (Toggle) ActionType() string { return "combobox.toggle" }

// ActionMsg creates an action.Msg for a combobox action.
func ActionMsg(id string, a action.Action) action.Msg {
	return action.Msg{Source: id, Action: a}
}
