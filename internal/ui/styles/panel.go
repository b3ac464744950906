package styles

import "github.com/charmbracelet/lipgloss"

// FieldStyle returns the bordered style of a widget's input row.
// Disabled widgets keep the idle border regardless of focus.
func FieldStyle(focused, disabled bool) lipgloss.Style {
	color := T().Border
	if focused && !disabled {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
