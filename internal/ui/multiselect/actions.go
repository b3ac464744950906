package multiselect

import (
	"github.com/llehouerou/dropwidgets/internal/ui/action"
)

// Change reports the new set of selected values.
type Change[T comparable] struct {
	Values []T
}

// ActionType implements action.Action.
func (Change[T]) ActionType() string { return "multiselect.change" }

// Select reports an option added from the list.
type Select[T comparable] struct {
	Item T
}

// ActionType implements action.Action.
func (Select[T]) ActionType() string { return "multiselect.select" }

// Create reports a tag created from the search text.
type Create struct {
	Text string
}

// ActionType implements action.Action.
func (Create) ActionType() string { return "multiselect.create" }

// Search reports a new search term.
type Search struct {
	Term string
}

// ActionType implements action.Action.
func (Search) ActionType() string { return "multiselect.search" }

// Toggle reports the tray opening or closing.
type Toggle struct {
	Open bool
}

// ActionType implements action.Action.
func (Toggle) ActionType() string { return "multiselect.toggle" }

// ActionMsg creates an action.Msg for a multiselect action.
func ActionMsg(id string, a action.Action) action.Msg {
	return action.Msg{Source: id, Action: a}
}
