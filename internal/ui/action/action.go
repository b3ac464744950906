// Package action carries what a widget did to its owner.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is one thing a widget reports, such as a change or a toggle.
// ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg a widget emits for an action. Source is the widget id.
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
