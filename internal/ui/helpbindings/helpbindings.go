// Package helpbindings provides a scrollable panel listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dropwidgets/internal/keymap"
	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/render"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

// Compile-time check that Model implements ui.Widget.
var _ ui.Widget = (*Model)(nil)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"combobox",
	"multiselect",
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":      "Global",
	"combobox":    "Combobox",
	"multiselect": "Multiselect",
}

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a new help panel model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements ui.Widget.
func (m *Model) Init() tea.Cmd { return nil }

// Focus implements ui.Widget.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return nil
}

// Blur implements ui.Widget.
func (m *Model) Blur() tea.Cmd {
	m.SetFocused(false)
	return nil
}

// Update implements ui.Widget.
func (m *Model) Update(msg tea.Msg) (ui.Widget, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "f1", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements ui.Widget.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Widest of all lines, so scrolling does not resize the panel.
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		visible[i] = render.Pad(line, maxWidth)
	}

	s := styles.T().S()
	body := s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(m.buildFooter())

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 1).
		Render(body)
}

func (m Model) buildContent() string {
	var sb strings.Builder

	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keysLabel(b)))
	}

	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(t.S().Subtle.Render(render.Separator(maxKeyWidth + 15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		sb.WriteString(keyStyle.Render(render.Pad(keysLabel(b), maxKeyWidth)))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keysLabel lists the keys of a binding, spelling out the space bar.
func keysLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "f1/esc close"
	}
	return "j/k scroll · f1/esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for the title, footer and border.
	return max(m.Height()-8, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
