// Package textinput provides the text field of the widgets: a bubbles text
// input with an inline completion tail.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

// Model is a single-line text field. While suggesting, the typed text is
// followed by the untyped tail of the suggestion.
type Model struct {
	input      textinput.Model
	suggestion string
	deleting   bool
}

// New creates an empty field.
func New(placeholder string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = styles.T().S().Muted
	ti.TextStyle = styles.T().S().Base
	ti.Cursor.SetMode(cursor.CursorStatic)
	return Model{input: ti}
}

// Focus focuses the field. The cursor does not blink, so no command is
// returned in practice.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur unfocuses the field and accepts any pending suggestion.
func (m *Model) Blur() {
	m.input.Blur()
	m.Accept()
}

// Focused reports whether the field has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the typed text, without the suggestion tail.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text and drops the suggestion.
func (m *Model) SetValue(s string) {
	m.suggestion = ""
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// SetPlaceholder changes the text shown while empty.
func (m *Model) SetPlaceholder(s string) {
	m.input.Placeholder = s
}

// SetWidth sets the visible width of the field.
func (m *Model) SetWidth(w int) {
	m.input.Width = max(w-1, 1)
}

// Suggest offers full as a completion of the typed text. It is ignored
// unless full extends the typed text (case-insensitively).
func (m *Model) Suggest(full string) {
	v := m.input.Value()
	if len(full) <= len(v) || !strings.EqualFold(full[:len(v)], v) {
		m.suggestion = ""
		return
	}
	m.suggestion = full
}

// Suggesting reports whether a completion tail is shown.
func (m Model) Suggesting() bool {
	return m.suggestion != ""
}

// Tail returns the untyped part of the suggestion.
func (m Model) Tail() string {
	if m.suggestion == "" {
		return ""
	}
	return m.suggestion[len(m.input.Value()):]
}

// Accept turns the suggestion into typed text and returns the new value.
func (m *Model) Accept() string {
	if m.suggestion != "" {
		s := m.suggestion
		m.suggestion = ""
		m.input.SetValue(s)
		m.input.CursorEnd()
	}
	return m.input.Value()
}

// Deleting reports whether the last edit removed text.
func (m Model) Deleting() bool {
	return m.deleting
}

// Update forwards a key to the field. changed reports whether the typed text
// changed; any change drops the current suggestion.
func (m *Model) Update(msg tea.Msg) (cmd tea.Cmd, changed bool) {
	before := m.input.Value()
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyBackspace, tea.KeyDelete, tea.KeyCtrlW, tea.KeyCtrlU, tea.KeyCtrlK:
			m.deleting = true
		case tea.KeyRunes, tea.KeySpace:
			m.deleting = false
		}
	}
	m.input, cmd = m.input.Update(msg)
	changed = m.input.Value() != before
	if changed {
		m.suggestion = ""
	}
	return cmd, changed
}

// View renders the field. While suggesting, the typed text is followed by
// the highlighted completion tail instead of the cursor.
func (m Model) View() string {
	tail := m.Tail()
	if tail == "" {
		return m.input.View()
	}
	return m.input.TextStyle.Render(m.input.Value()) + styles.T().S().Suggestion.Render(tail)
}
