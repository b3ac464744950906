package keymap

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "combobox", "multiselect"
}

// Bindings contains all key bindings for help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab", "shift+tab"}, "Switch widget", "global"},
	{ActionHelp, []string{"f1"}, "Show key bindings", "global"},

	// Combobox
	{ActionOpen, []string{"alt+down"}, "Open list", "combobox"},
	{ActionClose, []string{"alt+up"}, "Close list", "combobox"},
	{ActionNext, []string{"down"}, "Next option", "combobox"},
	{ActionPrev, []string{"up"}, "Previous option", "combobox"},
	{ActionFirst, []string{"home"}, "First option", "combobox"},
	{ActionLast, []string{"end"}, "Last option", "combobox"},
	{ActionCancel, []string{"esc"}, "Close list", "combobox"},
	{ActionSelect, []string{"enter"}, "Select option", "combobox"},

	// Multiselect
	{ActionOpen, []string{"alt+down"}, "Open list", "multiselect"},
	{ActionClose, []string{"alt+up"}, "Close list", "multiselect"},
	{ActionNext, []string{"down"}, "Next option", "multiselect"},
	{ActionPrev, []string{"up"}, "Previous option", "multiselect"},
	{ActionFirst, []string{"home"}, "First option or tag", "multiselect"},
	{ActionLast, []string{"end"}, "Last option or tag", "multiselect"},
	{ActionCancel, []string{"esc"}, "Close list or leave tags", "multiselect"},
	{ActionSelect, []string{"enter"}, "Add option", "multiselect"},
	{ActionCreate, []string{"alt+enter"}, "Create tag from search", "multiselect"},
	{ActionTagPrev, []string{"left"}, "Previous tag", "multiselect"},
	{ActionTagNext, []string{"right"}, "Next tag", "multiselect"},
	{ActionRemoveTag, []string{"delete"}, "Remove focused tag", "multiselect"},
	{ActionRemoveLast, []string{"backspace"}, "Remove last tag", "multiselect"},
	{ActionToggle, []string{" "}, "Open list", "multiselect"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
