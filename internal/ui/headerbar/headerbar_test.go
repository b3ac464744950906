package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		active int
		width  int
		want   string
	}{
		{"too narrow", []string{"Fruit", "Tags"}, 0, 10, ""},
		{"no widgets", nil, 0, 80, ""},
		{"two widgets", []string{"Fruit", "Tags"}, 1, 80, "1 Fruit │ 2 Tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.names, tt.active, tt.width))
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("Render() = %q, want %q", strings.TrimSpace(got), tt.want)
			}
		})
	}
}

func TestRender_Centered(t *testing.T) {
	out := Render([]string{"Fruit", "Tags"}, 0, 40)
	plain := testutil.StripANSI(out)

	left := len(plain) - len(strings.TrimLeft(plain, " "))
	content := lipgloss.Width(strings.TrimSpace(plain))
	if left != (40-content)/2 {
		t.Errorf("left padding = %d, want %d", left, (40-content)/2)
	}
}
