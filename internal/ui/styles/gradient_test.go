package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlend_Endpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, to, Blend(from, to, 1))
	assert.Equal(t, to, Blend(from, to, 3), "t is clamped")
}

func TestBlend_Midpoint(t *testing.T) {
	got := Blend("#000000", "#ffffff", 0.5)

	assert.NotEqual(t, lipgloss.Color("#000000"), got)
	assert.NotEqual(t, lipgloss.Color("#ffffff"), got)
	assert.Len(t, string(got), 7)
}

func TestBlend_ANSIColorsSnap(t *testing.T) {
	assert.Equal(t, lipgloss.Color("240"), Blend("240", "39", 0.2))
	assert.Equal(t, lipgloss.Color("39"), Blend("240", "39", 0.8))
}

func TestShimmer(t *testing.T) {
	assert.Empty(t, Shimmer("", "#000000", "#ffffff"))
	assert.Contains(t, Shimmer("x", "#000000", "#ffffff"), "x")
	assert.Equal(t, 7, lipgloss.Width(Shimmer("loading", "#000000", "#ffffff")))
}
