package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetFor(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		dropUp bool
		tm     TranslationMap
		want   string
	}{
		{"closed drops down", StatusClosed, false, nil, "top: -100%"},
		{"opening drops down", StatusOpening, false, nil, "top: -100%"},
		{"open", StatusOpen, false, nil, "top: 0"},
		{"closing", StatusClosing, false, nil, "top: 0"},
		{"closed drops up", StatusClosed, true, nil, "top: 100%"},
		{"opening drops up", StatusOpening, true, nil, "top: 100%"},
		{"open drops up", StatusOpen, true, nil, "top: 0"},
		{"translated hidden", StatusClosed, false, DefaultTranslation, "transform: translateY(-100%)"},
		{"translated visible", StatusOpen, false, DefaultTranslation, "transform: translateY(0)"},
		{"unrelated map entry", StatusOpen, false, TranslationMap{"left": "translateX"}, "top: 0"},
		{"unknown status", Status(42), false, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := offsetFor(tt.status, tt.dropUp, tt.tm)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestOffsetFor_Fraction(t *testing.T) {
	assert.InDelta(t, -1.0, offsetFor(StatusClosed, false, nil).Fraction, 1e-9)
	assert.InDelta(t, 1.0, offsetFor(StatusClosed, true, DefaultTranslation).Fraction, 1e-9)
	assert.InDelta(t, 0.0, offsetFor(StatusOpen, true, nil).Fraction, 1e-9)
}

func TestMachine_TranslationIsConsistent(t *testing.T) {
	d := &fakeDriver{}
	m := New(Props{Content: Text("x")}, Config{Driver: d, TranslationMap: DefaultTranslation})
	m.OnRenderCommitted()

	m.SetProps(Props{Open: true, Content: Text("x")})
	m.SetProps(Props{Open: false, Content: Text("x")})

	for _, r := range d.runs {
		assert.Equal(t, "transform", r.target.Property)
	}
	assert.Equal(t, "transform", m.Offset().Property)
}

func TestStatus_Styles(t *testing.T) {
	tests := []struct {
		status   Status
		overflow string
		display  string
		name     string
	}{
		{StatusClosed, "hidden", "none", "closed"},
		{StatusOpening, "hidden", "block", "opening"},
		{StatusOpen, "visible", "block", "open"},
		{StatusClosing, "hidden", "block", "closing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overflow, tt.status.Overflow())
			assert.Equal(t, tt.display, tt.status.Display())
			assert.Equal(t, tt.name, tt.status.String())
		})
	}
}

func TestStatus_ZeroValueIsClosed(t *testing.T) {
	var s State

	assert.Equal(t, StatusClosed, s.Status)
	assert.False(t, s.Status.Transitioning())
	assert.Equal(t, "none", s.Status.Display())
}
