package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/action"
)

// WidgetHarness wraps a widget for testing, providing helpers to simulate
// key presses and collect the actions the widget reports.
type WidgetHarness struct {
	widget ui.Widget
	cmds   []tea.Cmd
}

// NewWidgetHarness creates a focused harness for any ui.Widget. It
// initializes the widget and captures any init command.
func NewWidgetHarness(w ui.Widget) *WidgetHarness {
	h := &WidgetHarness{widget: w}
	if cmd := w.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	h.Focus()
	return h
}

// Widget returns the underlying widget for type assertion when needed.
func (h *WidgetHarness) Widget() ui.Widget {
	return h.widget
}

// Focus focuses the widget and collects its command.
func (h *WidgetHarness) Focus() {
	if cmd := h.widget.Focus(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// Blur unfocuses the widget and collects its command.
func (h *WidgetHarness) Blur() {
	if cmd := h.widget.Blur(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
}

// SetSize sets the widget dimensions.
func (h *WidgetHarness) SetSize(width, height int) {
	h.widget.SetSize(width, height)
}

// View returns the widget's rendered content.
func (h *WidgetHarness) View() string {
	return h.widget.View()
}

// SendMsg sends any message to the widget and returns the resulting command.
func (h *WidgetHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.widget, cmd = h.widget.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Type sends each rune of s as a key press.
func (h *WidgetHarness) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			h.SendMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key (enter, escape, arrows, etc.).
func (h *WidgetHarness) SendKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendAltKey sends a special key with the alt modifier.
func (h *WidgetHarness) SendAltKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType, Alt: true})
}

// SendEnter sends the enter key.
func (h *WidgetHarness) SendEnter() tea.Cmd {
	return h.SendKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *WidgetHarness) SendEscape() tea.Cmd {
	return h.SendKey(tea.KeyEscape)
}

// SendUp sends the up arrow key.
func (h *WidgetHarness) SendUp() tea.Cmd {
	return h.SendKey(tea.KeyUp)
}

// SendDown sends the down arrow key.
func (h *WidgetHarness) SendDown() tea.Cmd {
	return h.SendKey(tea.KeyDown)
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *WidgetHarness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *WidgetHarness) ClearCommands() {
	h.cmds = nil
}

// Actions runs the collected commands and returns the reported actions in
// order, then clears the commands. Commands must not block.
func (h *WidgetHarness) Actions() []action.Action {
	var out []action.Action
	for _, msg := range Drain(h.cmds...) {
		if am, ok := msg.(action.Msg); ok {
			out = append(out, am.Action)
		}
	}
	h.cmds = nil
	return out
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Drain runs commands, expanding batches, and returns every message.
func Drain(cmds ...tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for _, cmd := range cmds {
		msg := ExecuteCmd(cmd)
		if batch, ok := msg.(tea.BatchMsg); ok {
			out = append(out, Drain(batch...)...)
			continue
		}
		if msg != nil {
			out = append(out, msg)
		}
	}
	return out
}

// ViewContains checks if the widget's view contains the given substring.
func (h *WidgetHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}
