package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/ui/render"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

// FrameStyle configures the tray box appearance.
type FrameStyle struct {
	Border      lipgloss.Border
	BorderFrom  lipgloss.Color // Border color while hidden
	BorderTo    lipgloss.Color // Border color once fully shown
	FooterStyle lipgloss.Style
}

// DefaultFrameStyle returns the default tray style.
func DefaultFrameStyle() FrameStyle {
	t := styles.T()
	return FrameStyle{
		Border:      lipgloss.RoundedBorder(),
		BorderFrom:  t.BgBase,
		BorderTo:    t.Border,
		FooterStyle: t.S().Subtle,
	}
}

// Frame is the box drawn around a dropdown list.
type Frame struct {
	Body   string
	Footer string
	Width  int // Outer width including border; 0 = fit content
	Style  FrameStyle
	// Progress is the tray visibility in [0, 1]; the border fades in with it.
	Progress float64
}

// NewFrame creates a frame with the default style, fully shown.
func NewFrame(body string, width int) Frame {
	return Frame{
		Body:     body,
		Width:    width,
		Style:    DefaultFrameStyle(),
		Progress: 1,
	}
}

// Render returns the framed body.
func (f Frame) Render() string {
	inner := f.Width - 2
	if f.Width <= 0 {
		inner = maxLineWidth(f.Body)
		if f.Footer != "" {
			inner = max(inner, lipgloss.Width(f.Footer))
		}
	}
	inner = max(inner, 1)

	lines := make([]string, 0, strings.Count(f.Body, "\n")+3)
	for line := range strings.SplitSeq(f.Body, "\n") {
		if lipgloss.Width(line) > inner {
			line = render.Truncate(line, inner)
		}
		lines = append(lines, render.Pad(line, inner))
	}
	if f.Footer != "" {
		lines = append(lines, render.Separator(inner))
		footer := f.Style.FooterStyle.Render(render.Truncate(f.Footer, inner))
		lines = append(lines, centerLine(footer, inner))
	}

	box := lipgloss.NewStyle().
		Border(f.Style.Border).
		BorderForeground(styles.Blend(f.Style.BorderFrom, f.Style.BorderTo, f.Progress)).
		Width(inner)
	return box.Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
