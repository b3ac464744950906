package popup

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the tray for the current state: nothing while closed, the
// content shifted and clipped by the container while sliding, and the plain
// content once open.
func (m *Machine) View() string {
	if m.props.Content == nil {
		return ""
	}
	return m.Render(m.props.Content.View())
}

// Render is View for content rendered by the caller, typically the same
// content with decorations that follow Progress.
func (m *Machine) Render(content string) string {
	if m.state.Status == StatusClosed || content == "" {
		return ""
	}
	if m.state.Status.Overflow() == "visible" {
		return content
	}

	height := lipgloss.Height(content)
	if m.state.HeightSet && m.state.Height > 0 {
		height = m.state.Height
	}
	return Slide(content, m.fraction(), height)
}

// fraction is the current offset as a multiple of the content height.
func (m *Machine) fraction() float64 {
	if m.state.InitialRender {
		return 0
	}
	return hiddenFraction(m.props.DropUp) * (1 - m.Progress())
}

// Slide renders content shifted by fraction of its own height inside a
// container of the given height, clipping what falls outside. Rows without
// content are blank so an overlay lets the base view show through.
func Slide(content string, fraction float64, height int) string {
	if height <= 0 || content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	blank := strings.Repeat(" ", width)

	shift := int(math.Round(fraction * float64(len(lines))))
	rows := make([]string, height)
	for r := range rows {
		i := r - shift
		if i >= 0 && i < len(lines) {
			rows[r] = lines[i]
		} else {
			rows[r] = blank
		}
	}
	return strings.Join(rows, "\n")
}
