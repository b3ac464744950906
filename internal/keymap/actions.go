// Package keymap defines key bindings and action dispatch for the widgets.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Tray actions
	ActionOpen   Action = "open"   // alt+down
	ActionClose  Action = "close"  // alt+up
	ActionCancel Action = "cancel" // esc - close tray or leave tag focus
	ActionToggle Action = "toggle" // space - open when nothing is typed

	// List navigation
	ActionNext  Action = "next"
	ActionPrev  Action = "prev"
	ActionFirst Action = "first"
	ActionLast  Action = "last"

	// Selection
	ActionSelect Action = "select" // enter
	ActionCreate Action = "create" // alt+enter - create from the search term

	// Tag actions (multiselect)
	ActionTagPrev    Action = "tag_prev"
	ActionTagNext    Action = "tag_next"
	ActionRemoveTag  Action = "remove_tag"  // delete - remove the focused tag
	ActionRemoveLast Action = "remove_last" // backspace - remove the last tag
)
