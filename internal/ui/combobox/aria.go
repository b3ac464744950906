package combobox

// Aria holds the accessibility attributes of the text field.
type Aria struct {
	Role             string
	Expanded         bool
	HasPopup         bool
	Owns             string
	Autocomplete     string // both, inline, list or none
	Busy             bool
	ActiveDescendant string
	Disabled         bool
	ReadOnly         bool
}

// Aria returns the accessibility attributes for the current state.
func (m *Model[T]) Aria() Aria {
	a := Aria{
		Role:         "combobox",
		Expanded:     m.open,
		HasPopup:     true,
		Owns:         m.list.ID(),
		Autocomplete: autocomplete(m.cfg.Suggest, m.cfg.Filter.Enabled()),
		Busy:         m.cfg.Busy,
		Disabled:     m.cfg.Disabled,
		ReadOnly:     m.cfg.ReadOnly,
	}
	if m.open {
		a.ActiveDescendant = m.list.ActiveDescendant()
	}
	return a
}

func autocomplete(suggest, filtering bool) string {
	switch {
	case suggest && filtering:
		return "both"
	case suggest:
		return "inline"
	case filtering:
		return "list"
	}
	return "none"
}
