package multiselect

import "strings"

// Aria holds the accessibility attributes of the search field.
type Aria struct {
	Role             string
	Expanded         bool
	HasPopup         bool
	Owns             string
	Busy             bool
	ActiveDescendant string
	Disabled         bool
	ReadOnly         bool
}

// Element ids derived from the widget id.
func (m *Model[T]) notifyID() string    { return m.cfg.ID + "_notify_area" }
func (m *Model[T]) tagsID() string      { return m.cfg.ID + "_taglist" }
func (m *Model[T]) createID() string    { return m.cfg.ID + "_createlist_option" }
func (m *Model[T]) activeTagID() string { return m.cfg.ID + "_taglist_active_tag" }

// Aria returns the accessibility attributes for the current state.
func (m *Model[T]) Aria() Aria {
	owns := []string{m.list.ID(), m.notifyID()}
	if len(m.values) > 0 {
		owns = append(owns, m.tagsID())
	}
	if m.showCreate() {
		owns = append(owns, m.createID())
	}

	a := Aria{
		Role:     "listbox",
		Expanded: m.open,
		HasPopup: true,
		Owns:     strings.Join(owns, " "),
		Busy:     m.cfg.Busy,
		Disabled: m.cfg.Disabled,
		ReadOnly: m.cfg.ReadOnly,
	}
	switch {
	case m.open && m.createFocused():
		a.ActiveDescendant = m.createID()
	case m.open:
		a.ActiveDescendant = m.list.ActiveDescendant()
	case m.focusedTag >= 0:
		a.ActiveDescendant = m.activeTagID()
	}
	return a
}
