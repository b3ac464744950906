// Package geometry measures rendered blocks for the popup machine.
package geometry

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/ui/popup"
)

// Styled is a popup element rendered through a lipgloss style.
type Styled struct {
	Style   lipgloss.Style
	Content string
}

// View implements popup.Element.
func (s Styled) View() string {
	return s.Style.Render(s.Content)
}

// LipglossProber measures elements in terminal rows.
type LipglossProber struct{}

var _ popup.Prober = LipglossProber{}

// MeasureHeight returns the border-box height of el plus its vertical
// margins. Empty content measures zero.
func (LipglossProber) MeasureHeight(el popup.Element) int {
	if el == nil {
		return 0
	}
	if s, ok := el.(Styled); ok {
		if s.Content == "" {
			return 0
		}
		box := s.Style.UnsetMarginTop().UnsetMarginBottom().Render(s.Content)
		return lipgloss.Height(box) + s.Style.GetMarginTop() + s.Style.GetMarginBottom()
	}
	v := el.View()
	if v == "" {
		return 0
	}
	return lipgloss.Height(v)
}
