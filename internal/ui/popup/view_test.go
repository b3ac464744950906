package popup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlide(t *testing.T) {
	content := "aa\nbb\ncc\ndd"

	tests := []struct {
		name     string
		fraction float64
		height   int
		want     []string
	}{
		{"flush", 0, 4, []string{"aa", "bb", "cc", "dd"}},
		{"half above", -0.5, 4, []string{"cc", "dd", "  ", "  "}},
		{"hidden above", -1, 4, []string{"  ", "  ", "  ", "  "}},
		{"quarter below", 0.25, 4, []string{"  ", "aa", "bb", "cc"}},
		{"container shorter", 0, 2, []string{"aa", "bb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slide(content, tt.fraction, tt.height)
			assert.Equal(t, tt.want, strings.Split(got, "\n"))
		})
	}
}

func TestSlide_Empty(t *testing.T) {
	assert.Empty(t, Slide("", 0, 3))
	assert.Empty(t, Slide("x", 0, 0))
}

func TestMachine_View(t *testing.T) {
	d := &fakeDriver{}
	m := New(Props{Content: Text("one\ntwo")}, Config{Driver: d})
	m.OnRenderCommitted()
	assert.Empty(t, m.View(), "closed tray renders nothing")

	m.SetProps(Props{Open: true, Content: Text("one\ntwo")})
	d.last().progress = 0.5
	assert.Equal(t, "two\n   ", m.View())

	d.last().done()
	assert.Equal(t, "one\ntwo", m.View())
}

func TestMachine_ViewDropUp(t *testing.T) {
	d := &fakeDriver{}
	m := New(Props{Content: Text("one\ntwo"), DropUp: true}, Config{Driver: d})
	m.OnRenderCommitted()

	m.SetProps(Props{Open: true, DropUp: true, Content: Text("one\ntwo")})
	d.last().progress = 0.5

	assert.Equal(t, "   \none", m.View())
}
