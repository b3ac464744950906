// Package combobox provides a text field with a dropdown list of options,
// inline completion and filtering.
package combobox

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/dropwidgets/internal/filter"
	"github.com/llehouerou/dropwidgets/internal/keymap"
	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/action"
	"github.com/llehouerou/dropwidgets/internal/ui/geometry"
	"github.com/llehouerou/dropwidgets/internal/ui/list"
	"github.com/llehouerou/dropwidgets/internal/ui/popup"
	"github.com/llehouerou/dropwidgets/internal/ui/render"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
	"github.com/llehouerou/dropwidgets/internal/ui/textinput"
)

// Compile-time check that Model implements ui.Widget.
var _ ui.Widget = (*Model[string])(nil)

const defaultWidth = 30

// Value is either one of the data items or free text.
type Value[T comparable] struct {
	Item   T
	IsItem bool
	Text   string
}

// Model is a combobox widget. It owns its value and open state and reports
// every change as an action.
type Model[T comparable] struct {
	ui.Base
	cfg   Config[T]
	keys  *keymap.Resolver
	input textinput.Model
	list  list.Model[T]
	tray  *popup.Machine

	open    bool
	value   Value[T]
	pending []tea.Cmd
}

// New creates a closed combobox with an empty value.
func New[T comparable](cfg Config[T]) *Model[T] {
	cfg = cfg.withDefaults()
	m := &Model[T]{
		cfg:   cfg,
		keys:  keymap.ForWidget("combobox"),
		input: textinput.New(cfg.Placeholder),
		list:  list.New(cfg.ID+"_listbox", cfg.Text),
	}
	m.SetSize(defaultWidth, 0)
	m.tray = popup.New(popup.Props{
		DropUp:   cfg.DropUp,
		Duration: cfg.Duration,
	}, popup.Config{
		Driver:         cfg.Driver,
		Easing:         cfg.Easing,
		TranslationMap: cfg.TranslationMap,
		Prober:         geometry.LipglossProber{},
		Logger:         cfg.Logger,
	})
	m.process()
	return m
}

// Init implements ui.Widget. The first render is committed here.
func (m *Model[T]) Init() tea.Cmd {
	m.commit()
	return nil
}

// Value returns the current value.
func (m *Model[T]) Value() Value[T] {
	return m.value
}

// SetValue selects item without reporting a change.
func (m *Model[T]) SetValue(item T) {
	m.value = m.itemValue(item)
	m.input.SetValue(m.value.Text)
	m.process()
	m.commit()
}

// SetData replaces the options.
func (m *Model[T]) SetData(data []T) {
	m.cfg.Data = data
	m.process()
	m.commit()
}

// SetBusy toggles the busy indicator.
func (m *Model[T]) SetBusy(busy bool) {
	m.cfg.Busy = busy
}

// SetDropUp flips the side the tray opens on.
func (m *Model[T]) SetDropUp(dropUp bool) {
	m.cfg.DropUp = dropUp
	m.commit()
}

// SetSize implements ui.Widget. Only the width is used; the tray always
// shows the same number of rows.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.SetWidth(m.width() - 8)
	m.list.SetSize(m.width()-ui.BorderWidth, ui.TrayRows)
}

// IsOpen reports whether the tray is requested open.
func (m *Model[T]) IsOpen() bool {
	return m.open
}

// Tray exposes the tray state machine.
func (m *Model[T]) Tray() *popup.Machine {
	return m.tray
}

// List exposes the option list.
func (m *Model[T]) List() *list.Model[T] {
	return &m.list
}

// Focus implements ui.Widget.
func (m *Model[T]) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur implements ui.Widget. A pending suggestion is accepted and the tray
// closes.
func (m *Model[T]) Blur() tea.Cmd {
	m.SetFocused(false)
	m.input.Blur()
	m.close()
	m.process()
	m.commit()
	return m.flush()
}

// Close tears the tray down. A slide in flight is dropped and the tray no
// longer changes state or fires callbacks.
func (m *Model[T]) Close() {
	m.tray.Unmount()
}

// Update implements ui.Widget.
func (m *Model[T]) Update(msg tea.Msg) (ui.Widget, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() || !m.editable() {
		return m, nil
	}

	var cmd tea.Cmd
	if !m.handleAction(m.keys.Resolve(key.String())) {
		cmd = m.typing(key)
	}
	m.commit()
	return m, tea.Batch(cmd, m.flush())
}

func (m *Model[T]) editable() bool {
	return !m.cfg.Disabled && !m.cfg.ReadOnly
}

func (m *Model[T]) handleAction(a keymap.Action) bool {
	switch a {
	case keymap.ActionLast:
		if m.open {
			m.list.Focus(m.list.Last())
		} else {
			m.selectItem(m.list.Last(), true)
		}
	case keymap.ActionFirst:
		if m.open {
			m.list.Focus(m.list.First())
		} else {
			m.selectItem(m.list.First(), true)
		}
	case keymap.ActionCancel:
		if !m.open {
			return false
		}
		m.close()
	case keymap.ActionSelect:
		if !m.open {
			return false
		}
		m.close()
		m.selectItem(m.list.FocusedIndex(), true)
	case keymap.ActionOpen:
		m.openTray()
	case keymap.ActionClose:
		m.close()
	case keymap.ActionNext:
		if m.open {
			m.list.Focus(m.list.Next(m.list.FocusedIndex()))
		} else {
			m.selectItem(m.list.Next(m.list.SelectedIndex()), true)
		}
	case keymap.ActionPrev:
		if m.open {
			m.list.Focus(m.prev(m.list.FocusedIndex()))
		} else {
			m.selectItem(m.prev(m.list.SelectedIndex()), true)
		}
	default:
		return false
	}
	return true
}

// prev stays on the first option when nothing is focused.
func (m *Model[T]) prev(i int) int {
	if i < 0 {
		return m.list.First()
	}
	return m.list.Prev(i)
}

func (m *Model[T]) typing(key tea.KeyMsg) tea.Cmd {
	cmd, changed := m.input.Update(key)
	if !changed {
		return cmd
	}

	typed := m.input.Value()
	deleting := m.input.Deleting()
	suggestion := typed
	if m.cfg.Suggest && !deleting {
		if s := m.suggest(typed); s != "" {
			suggestion = s
			m.input.Suggest(s)
		}
	}

	if i := m.indexOfText(suggestion); i >= 0 && !deleting {
		m.change(m.itemValue(m.cfg.Data[i]), true)
	} else {
		m.change(Value[T]{Text: typed}, true)
	}
	m.openTray()
	return cmd
}

// suggest returns the text of the first listed option starting with typed.
func (m *Model[T]) suggest(typed string) string {
	if typed == "" {
		return ""
	}
	for _, it := range m.list.Items() {
		if text := m.cfg.Text(it); filter.Match(filter.StartsWith, text, typed, false) {
			return text
		}
	}
	return ""
}

func (m *Model[T]) indexOfText(text string) int {
	for i, it := range m.cfg.Data {
		if strings.EqualFold(m.cfg.Text(it), text) {
			return i
		}
	}
	return -1
}

func (m *Model[T]) selectItem(i int, fromList bool) {
	if i < 0 {
		m.change(Value[T]{Text: m.input.Value()}, false)
		return
	}
	item := m.list.Items()[i]
	m.input.Accept()
	if fromList {
		m.notify(Select[T]{Item: item})
	}
	m.change(m.itemValue(item), false)
}

func (m *Model[T]) itemValue(item T) Value[T] {
	return Value[T]{Item: item, IsItem: true, Text: m.cfg.Text(item)}
}

// change stores v and recomputes the list. Picked values replace the field
// text; typed ones keep what the user typed.
func (m *Model[T]) change(v Value[T], typed bool) {
	if !typed {
		m.input.SetValue(v.Text)
	}
	if v != m.value {
		m.value = v
		m.notify(Change[T]{Value: v, Typed: typed})
	}
	m.process()
}

// process filters the data by the typed text while the value is free text
// or a suggestion, then points selection and focus at the value or at the
// closest match.
func (m *Model[T]) process() {
	term := ""
	if !m.value.IsItem || m.input.Suggesting() {
		term = m.input.Value()
	}
	items := m.cfg.Data
	if m.cfg.Filter.Enabled() && term != "" {
		items = filter.Filter(items, m.cfg.Text, term, m.cfg.Filter)
	}
	m.list.SetItems(items)

	idx := -1
	if m.value.IsItem {
		idx = m.list.IndexFunc(func(it T) bool { return it == m.value.Item })
	}
	m.list.Select(idx)
	if idx == -1 {
		idx = max(filter.IndexOf(items, m.cfg.Text, m.value.Text, m.cfg.Filter), 0)
	}
	m.list.Focus(idx)
}

func (m *Model[T]) openTray() {
	if !m.open {
		m.open = true
		m.notify(Toggle{Open: true})
	}
}

func (m *Model[T]) close() {
	if m.open {
		m.open = false
		m.notify(Toggle{Open: false})
	}
}

func (m *Model[T]) notify(a action.Action) {
	msg := ActionMsg(m.cfg.ID, a)
	m.pending = append(m.pending, func() tea.Msg { return msg })
}

func (m *Model[T]) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// commit reports the current tray props to the state machine and marks the
// render as committed.
func (m *Model[T]) commit() {
	next := m.tray.Props()
	next.Open = m.open
	next.DropUp = m.cfg.DropUp
	next.Duration = m.cfg.Duration
	next.Content = popup.Text(m.trayView(1))
	next.ContentKey = m.contentKey()
	m.tray.SetProps(next)
	m.tray.OnRenderCommitted()
}

func (m *Model[T]) contentKey() string {
	return strconv.Itoa(m.list.Len()) + "|" + m.input.Value()
}

func (m *Model[T]) width() int {
	return max(m.Width(), ui.MinFieldWidth)
}

func (m *Model[T]) trayView(progress float64) string {
	inner := m.width() - ui.BorderWidth

	empty := m.cfg.Messages.EmptyList
	if len(m.cfg.Data) > 0 {
		empty = m.cfg.Messages.EmptyFilter
	}
	frame := popup.NewFrame(m.list.View(inner, empty), m.width())
	frame.Footer = countLabel(m.list.Len())
	frame.Progress = progress
	return frame.Render()
}

func countLabel(n int) string {
	if n == 1 {
		return "1 option"
	}
	return humanize.Comma(int64(n)) + " options"
}

// View implements ui.Widget.
func (m *Model[T]) View() string {
	w := m.width()
	icon := styles.T().S().Muted.Render("▾")
	if m.cfg.Busy {
		icon = styles.Shimmer("•••", styles.T().Warning, styles.T().Primary)
	}
	field := styles.FieldStyle(m.IsFocused(), m.cfg.Disabled).
		Width(w - ui.BorderWidth).
		Render(render.Row(m.input.View(), icon, w-4))

	tray := m.tray.Render(m.trayView(m.tray.Progress()))
	switch {
	case tray == "":
		return field
	case m.cfg.DropUp:
		return tray + "\n" + field
	default:
		return field + "\n" + tray
	}
}
