package app

import (
	"strings"

	"github.com/llehouerou/dropwidgets/internal/keymap"
	"github.com/llehouerou/dropwidgets/internal/ui/headerbar"
	"github.com/llehouerou/dropwidgets/internal/ui/overlay"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

var widgetNames = []string{"Fruit", "Tags"}

// View renders the header, both widgets and the status lines. The help
// panel is drawn centered over everything.
func (m Model) View() string {
	s := styles.T().S()

	var b strings.Builder
	if header := headerbar.Render(widgetNames, m.Focus, m.Width); header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	b.WriteString(s.Title.Render(widgetNames[0]))
	b.WriteString("\n")
	b.WriteString(m.Fruit.View())
	b.WriteString("\n\n")
	b.WriteString(s.Title.Render(widgetNames[1]))
	b.WriteString("\n")
	b.WriteString(m.Tags.View())
	b.WriteString("\n\n")

	if status := m.Tags.Status(); status != "" {
		b.WriteString(s.Muted.Render(status))
		b.WriteString("\n")
	}
	if m.LastAction != "" {
		b.WriteString(s.Subtle.Render(m.LastAction))
		b.WriteString("\n")
	}
	if m.ErrorMsg != "" {
		b.WriteString(s.Error.Render(m.ErrorMsg))
		b.WriteString("\n")
	}
	b.WriteString(s.Subtle.Render(m.hintLine()))

	view := b.String()
	if m.HelpVisible {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

var hints = []struct {
	action keymap.Action
	label  string
}{
	{keymap.ActionSwitchFocus, "switch"},
	{keymap.ActionHelp, "help"},
	{keymap.ActionQuit, "quit"},
}

// hintLine names the first key of each global action.
func (m Model) hintLine() string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		if keys := m.Keys.KeysFor(h.action); len(keys) > 0 {
			parts = append(parts, keys[0]+" "+h.label)
		}
	}
	return strings.Join(parts, " · ")
}
