package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/dropwidgets/internal/ui/testutil"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		width   int
		want    string
	}{
		{
			name:    "replaces covered columns",
			base:    "aaaaaa\nbbbbbb",
			overlay: "  XX",
			width:   6,
			want:    "aaXXaa\nbbbbbb",
		},
		{
			name:    "blank overlay lines keep the base",
			base:    "aaaa\nbbbb",
			overlay: "\n YY",
			width:   4,
			want:    "aaaa\nbYYb",
		},
		{
			name:    "short base lines are padded",
			base:    "ab",
			overlay: "    Z",
			width:   6,
			want:    "ab  Z ",
		},
		{
			name:    "overlay taller than base is cut",
			base:    "aaa",
			overlay: "X\nY",
			width:   3,
			want:    "Xaa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.base, tt.overlay, tt.width, 0))
		})
	}
}

func TestCompose_StyledBase(t *testing.T) {
	base := "\x1b[31mredredred\x1b[0m"

	got := testutil.StripANSI(Compose(base, "   XXX", 9, 1))

	assert.Equal(t, "redXXXred", got)
}

func TestCenter(t *testing.T) {
	got := Center("", "##\n##", 6, 4)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "  ##  ", lines[1])
	assert.Equal(t, "  ##  ", lines[2])
	assert.Equal(t, "", lines[3])
}
