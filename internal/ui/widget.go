package ui

import tea "github.com/charmbracelet/bubbletea"

// Widget is the contract shared by the form controls. Widgets report what
// happened through action.Msg commands.
type Widget interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View() string
	SetSize(width, height int)
	// Focus and Blur may report actions, e.g. a tray closing on blur.
	Focus() tea.Cmd
	Blur() tea.Cmd
	IsFocused() bool
}
