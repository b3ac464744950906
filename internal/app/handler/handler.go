// Package handler chains key handlers of the demo screen.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is the outcome of one handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and returns cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle the current key.
type Handler func() Result

// Chain runs handlers in order until one handles the key.
func Chain(handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
