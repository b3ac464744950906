package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the widgets.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Focused widget, active option
	Secondary lipgloss.Color // Tags, inline suggestion

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Option text, input text
	FgMuted  lipgloss.Color // Placeholder, empty-list message
	FgSubtle lipgloss.Color // Hints, footers

	// Backgrounds
	BgBase   lipgloss.Color // Tray background
	BgCursor lipgloss.Color // Focused option highlight

	// Borders
	Border      lipgloss.Color // Idle widget border
	BorderFocus lipgloss.Color // Focused widget border

	// Status colors
	Success lipgloss.Color // Selected option marker
	Error   lipgloss.Color // Create-new row
	Warning lipgloss.Color // Busy indicator

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common widget parts.
type Styles struct {
	Base       lipgloss.Style // Default text
	Muted      lipgloss.Style // Dimmed text
	Subtle     lipgloss.Style // Very dim text
	Title      lipgloss.Style // Bold, bright
	Selected   lipgloss.Style // Currently selected option
	Cursor     lipgloss.Style // Focused option highlight
	Tag        lipgloss.Style // Multiselect tag
	TagFocused lipgloss.Style // Focused multiselect tag
	Suggestion lipgloss.Style // Inline completion tail
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Tag: lipgloss.NewStyle().
			Foreground(t.Secondary),
		TagFocused: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Secondary),
		Suggestion: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.FgMuted),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
