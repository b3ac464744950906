package geometry

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/dropwidgets/internal/ui/popup"
)

func TestLipglossProber_MeasureHeight(t *testing.T) {
	tests := []struct {
		name string
		el   popup.Element
		want int
	}{
		{"nil", nil, 0},
		{"empty text", popup.Text(""), 0},
		{"single line", popup.Text("apple"), 1},
		{"three lines", popup.Text("a\nb\nc"), 3},
		{"empty styled", Styled{Style: lipgloss.NewStyle().Border(lipgloss.NormalBorder())}, 0},
		{"bordered", Styled{Style: lipgloss.NewStyle().Border(lipgloss.NormalBorder()), Content: "a\nb"}, 4},
		{"padding", Styled{Style: lipgloss.NewStyle().Padding(1, 0), Content: "a"}, 3},
		{"margins", Styled{Style: lipgloss.NewStyle().Margin(2, 0, 1, 0), Content: "a"}, 4},
	}

	var p LipglossProber
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.MeasureHeight(tt.el))
		})
	}
}

func TestLipglossProber_DrivesMachineHeight(t *testing.T) {
	content := Styled{Style: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()), Content: "a\nb\nc"}
	m := popup.New(popup.Props{Open: true, Content: content}, popup.Config{Prober: LipglossProber{}})

	m.OnRenderCommitted()

	assert.Equal(t, popup.StatusOpen, m.Status())
	assert.Equal(t, 5, m.State().Height)
}
