package textinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/dropwidgets/internal/ui/testutil"
)

func typeText(m *Model, s string) bool {
	changed := false
	for _, r := range s {
		_, c := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || c
	}
	return changed
}

func newFocused() Model {
	m := New("pick one")
	m.Focus()
	return m
}

func TestTextInput_TypeCharacters(t *testing.T) {
	m := newFocused()

	changed := typeText(&m, "hello")

	assert.True(t, changed)
	assert.Equal(t, "hello", m.Value())
	assert.False(t, m.Deleting())
}

func TestTextInput_IgnoresKeysWhenBlurred(t *testing.T) {
	m := New("")

	changed := typeText(&m, "x")

	assert.False(t, changed)
	assert.Empty(t, m.Value())
}

func TestTextInput_BackspaceMarksDeleting(t *testing.T) {
	m := newFocused()
	typeText(&m, "ab")

	_, changed := m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.True(t, changed)
	assert.True(t, m.Deleting())
	assert.Equal(t, "a", m.Value())

	typeText(&m, "c")
	assert.False(t, m.Deleting())
}

func TestTextInput_Suggestion(t *testing.T) {
	m := newFocused()
	typeText(&m, "ap")

	m.Suggest("Apple")

	assert.True(t, m.Suggesting())
	assert.Equal(t, "ple", m.Tail())
	assert.Equal(t, "ap", m.Value())
	assert.Contains(t, testutil.StripANSI(m.View()), "ple")

	assert.Equal(t, "Apple", m.Accept())
	assert.False(t, m.Suggesting())
	assert.Equal(t, "Apple", m.Value())
}

func TestTextInput_SuggestionMustExtendText(t *testing.T) {
	m := newFocused()
	typeText(&m, "ban")

	m.Suggest("Apple")
	assert.False(t, m.Suggesting())

	m.Suggest("ban")
	assert.False(t, m.Suggesting(), "nothing left to complete")
}

func TestTextInput_TypingDropsSuggestion(t *testing.T) {
	m := newFocused()
	typeText(&m, "a")
	m.Suggest("apple")

	typeText(&m, "x")

	assert.False(t, m.Suggesting())
	assert.Equal(t, "ax", m.Value())
}

func TestTextInput_BlurAcceptsSuggestion(t *testing.T) {
	m := newFocused()
	typeText(&m, "ch")
	m.Suggest("cherry")

	m.Blur()

	assert.False(t, m.Focused())
	assert.Equal(t, "cherry", m.Value())
}

func TestTextInput_SetValue(t *testing.T) {
	m := newFocused()
	typeText(&m, "a")
	m.Suggest("apple")

	m.SetValue("kiwi")

	assert.Equal(t, "kiwi", m.Value())
	assert.False(t, m.Suggesting())
}
