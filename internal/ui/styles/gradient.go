package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Blend returns the color t of the way from `from` to `to` (t in [0, 1]),
// blended in HCL space. Used to fade a tray border in while it slides.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	c1, ok1 := toColorful(from)
	c2, ok2 := toColorful(to)
	if !ok1 || !ok2 {
		// ANSI palette colors cannot be blended; snap halfway through.
		if t < 0.5 {
			return from
		}
		return to
	}
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// Shimmer renders text with a horizontal gradient, one color per grapheme.
// The busy indicator uses it.
func Shimmer(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render(cluster))
	}
	return b.String()
}

func toColorful(c lipgloss.Color) (colorful.Color, bool) {
	hex := string(c)
	if len(hex) != 7 || hex[0] != '#' {
		return colorful.Color{}, false
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return col, true
}
