// Package headerbar renders the one-line strip naming the demo widgets.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Render returns the header for the given widget names, highlighting the
// active one. Each name is prefixed by its position. Nothing is drawn below
// 20 columns.
func Render(names []string, active, width int) string {
	if width < 20 || len(names) == 0 {
		return ""
	}

	t := styles.T()
	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveKeyStyle := t.S().Subtle
	inactiveNameStyle := t.S().Muted

	parts := make([]string, 0, len(names))
	for i, name := range names {
		key := strconv.Itoa(i + 1)
		if i == active {
			parts = append(parts, activeStyle.Render(key+" "+name))
		} else {
			parts = append(parts, inactiveKeyStyle.Render(key)+" "+inactiveNameStyle.Render(name))
		}
	}

	content := strings.Join(parts, t.S().Subtle.Render(" │ "))

	// Center the content
	if w := lipgloss.Width(content); w < width {
		content = strings.Repeat(" ", (width-w)/2) + content
	}
	return content
}
