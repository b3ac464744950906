// Package multiselect provides a tag field with a searchable dropdown list.
// Picked options become tags; the search text can create new ones.
package multiselect

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/dropwidgets/internal/filter"
	"github.com/llehouerou/dropwidgets/internal/keymap"
	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/action"
	"github.com/llehouerou/dropwidgets/internal/ui/cursor"
	"github.com/llehouerou/dropwidgets/internal/ui/geometry"
	"github.com/llehouerou/dropwidgets/internal/ui/list"
	"github.com/llehouerou/dropwidgets/internal/ui/popup"
	"github.com/llehouerou/dropwidgets/internal/ui/render"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
	"github.com/llehouerou/dropwidgets/internal/ui/textinput"
)

// Compile-time check that Model implements ui.Widget.
var _ ui.Widget = (*Model[string])(nil)

const defaultWidth = 40

// Model is a multiselect widget. It owns its values, search term and open
// state and reports every change as an action.
type Model[T comparable] struct {
	ui.Base
	cfg   Config[T]
	keys  *keymap.Resolver
	input textinput.Model
	list  list.Model[T]
	tray  *popup.Machine

	open       bool
	values     []T
	focusedTag int
	// available counts the options left once values are excluded, before
	// the search term applies.
	available int
	pending   []tea.Cmd
}

// New creates a closed multiselect holding cfg.Values.
func New[T comparable](cfg Config[T]) *Model[T] {
	cfg = cfg.withDefaults()
	m := &Model[T]{
		cfg:        cfg,
		keys:       keymap.ForWidget("multiselect"),
		input:      textinput.New(cfg.Placeholder),
		list:       list.New(cfg.ID+"_listbox", cfg.Text),
		values:     slices.Clone(cfg.Values),
		focusedTag: cursor.None,
	}
	m.SetSize(defaultWidth, 0)
	m.tray = popup.New(popup.Props{
		DropUp:    cfg.DropUp,
		Duration:  cfg.Duration,
		OnOpening: m.list.ResetScroll,
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

// Values returns the selected values in insertion order.
func (m *Model[T]) Values() []T {
	return slices.Clone(m.values)
}

// SetValues replaces the selection without reporting a change.
func (m *Model[T]) SetValues(values []T) {
	m.values = slices.Clone(values)
	m.focusedTag = cursor.None
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

// SearchTerm returns the text typed in the field.
func (m *Model[T]) SearchTerm() string {
	return m.input.Value()
}

// FocusedTag returns the index of the focused tag, or -1.
func (m *Model[T]) FocusedTag() int {
	return m.focusedTag
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

// SetSize implements ui.Widget. Only the width is used.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(m.width()-ui.BorderWidth, ui.TrayRows)
	m.input.SetWidth(m.width() - 8)
}

// Focus implements ui.Widget.
func (m *Model[T]) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur implements ui.Widget. The tray closes and tag focus is dropped.
func (m *Model[T]) Blur() tea.Cmd {
	m.SetFocused(false)
	m.input.Blur()
	m.focusedTag = cursor.None
	m.close()
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
	noSearch := m.input.Value() == ""

	switch a {
	case keymap.ActionNext:
		next := m.list.Next(m.list.FocusedIndex())
		if m.createFocused() || (m.showCreate() && next == m.list.FocusedIndex()) {
			next = cursor.None
		}
		if !m.open {
			m.openTray()
			return true
		}
		m.list.Focus(next)
		m.focusedTag = cursor.None
	case keymap.ActionPrev:
		prev := m.list.Prev(m.list.FocusedIndex())
		if m.open {
			m.list.Focus(prev)
			m.focusedTag = cursor.None
		}
	case keymap.ActionClose:
		m.close()
	case keymap.ActionOpen:
		m.openTray()
	case keymap.ActionLast:
		if m.open {
			m.list.Focus(m.list.Last())
		} else if len(m.values) > 0 {
			m.focusedTag = len(m.values) - 1
		}
	case keymap.ActionFirst:
		if m.open {
			m.list.Focus(m.list.First())
		} else if len(m.values) > 0 {
			m.focusedTag = 0
		}
	case keymap.ActionSelect:
		if !m.open {
			return false
		}
		if m.createFocused() {
			m.create(m.input.Value())
		} else if i := m.list.FocusedIndex(); i >= 0 {
			m.selectItem(m.list.Items()[i])
		}
	case keymap.ActionCreate:
		if !m.open {
			return false
		}
		m.create(m.input.Value())
	case keymap.ActionCancel:
		if m.open {
			m.close()
		} else {
			m.focusedTag = cursor.None
		}
	case keymap.ActionTagPrev:
		if !noSearch {
			return false
		}
		m.focusedTag = m.prevTag()
	case keymap.ActionTagNext:
		if !noSearch {
			return false
		}
		m.focusedTag = m.nextTag()
	case keymap.ActionRemoveTag:
		if !noSearch {
			return false
		}
		if m.focusedTag >= 0 {
			m.remove(m.focusedTag)
		}
	case keymap.ActionRemoveLast:
		if !noSearch {
			return false
		}
		if len(m.values) > 0 {
			m.remove(len(m.values) - 1)
		}
	case keymap.ActionToggle:
		if !noSearch || m.open {
			return false
		}
		m.openTray()
	default:
		return false
	}
	return true
}

// prevTag walks left from the input into the tags, stopping on the first.
func (m *Model[T]) prevTag() int {
	switch {
	case len(m.values) == 0:
		return cursor.None
	case m.focusedTag < 0:
		return len(m.values) - 1
	}
	return max(m.focusedTag-1, 0)
}

// nextTag walks right; past the last tag focus returns to the input.
func (m *Model[T]) nextTag() int {
	if m.focusedTag < 0 || m.focusedTag >= len(m.values)-1 {
		return cursor.None
	}
	return m.focusedTag + 1
}

func (m *Model[T]) typing(key tea.KeyMsg) tea.Cmd {
	cmd, changed := m.input.Update(key)
	if !changed {
		return cmd
	}
	m.focusedTag = cursor.None
	m.notify(Search{Term: m.input.Value()})
	m.process()
	m.openTray()
	return cmd
}

func (m *Model[T]) selectItem(item T) {
	m.notify(Select[T]{Item: item})
	m.change(append(slices.Clone(m.values), item))
	m.close()
}

// create adds a tag built from text. Blank text is ignored.
func (m *Model[T]) create(text string) {
	text = strings.TrimSpace(text)
	if text == "" || m.cfg.Create == nil {
		return
	}
	m.notify(Create{Text: text})
	item := m.cfg.Create(text)
	if !slices.Contains(m.cfg.Data, item) {
		m.cfg.Data = append(slices.Clone(m.cfg.Data), item)
	}
	if !slices.Contains(m.values, item) {
		m.change(append(slices.Clone(m.values), item))
	} else {
		m.clearSearch()
		m.process()
	}
	m.close()
}

func (m *Model[T]) remove(i int) {
	values := slices.Delete(slices.Clone(m.values), i, i+1)
	switch {
	case len(values) == 0:
		m.focusedTag = cursor.None
	case m.focusedTag >= len(values):
		m.focusedTag = len(values) - 1
	}
	m.change(values)
}

// change stores values and clears the search.
func (m *Model[T]) change(values []T) {
	m.values = values
	m.notify(Change[T]{Values: slices.Clone(values)})
	m.clearSearch()
	m.process()
}

func (m *Model[T]) clearSearch() {
	if m.input.Value() == "" {
		return
	}
	m.input.SetValue("")
	m.notify(Search{Term: ""})
}

// process drops selected values from the data, filters by the search term
// and keeps the focused option when it survived.
func (m *Model[T]) process() {
	var focused T
	hadFocus := false
	if !m.createFocused() {
		focused, hadFocus = m.list.Focused()
	}

	data := make([]T, 0, len(m.cfg.Data))
	for _, it := range m.cfg.Data {
		if !slices.Contains(m.values, it) {
			data = append(data, it)
		}
	}
	m.available = len(data)
	data = filter.Filter(data, m.cfg.Text, m.input.Value(), m.cfg.Filter)
	m.list.SetItems(data)

	idx := -1
	if hadFocus {
		idx = m.list.IndexFunc(func(it T) bool { return it == focused })
	}
	if idx < 0 {
		idx = m.list.First()
	}
	m.list.Focus(idx)

	if len(m.values) == 0 {
		m.input.SetPlaceholder(m.cfg.Placeholder)
	} else {
		m.input.SetPlaceholder("")
	}
}

// showCreate reports whether the create row is offered: creation is
// enabled, there is a search term and no option or tag already has exactly
// that text.
func (m *Model[T]) showCreate() bool {
	term := m.input.Value()
	if m.cfg.Create == nil || strings.TrimSpace(term) == "" {
		return false
	}
	return !m.hasText(m.list.Items(), term) && !m.hasText(m.values, term)
}

func (m *Model[T]) hasText(items []T, term string) bool {
	for _, it := range items {
		if filter.Match(filter.Eq, m.cfg.Text(it), term, m.cfg.Filter.CaseSensitive) {
			return true
		}
	}
	return false
}

// createFocused reports whether the create row holds the list focus.
func (m *Model[T]) createFocused() bool {
	return m.showCreate() && (m.list.Len() == 0 || m.list.FocusedIndex() < 0)
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

func (m *Model[T]) commit() {
	next := m.tray.Props()
	next.Open = m.open
	next.DropUp = m.cfg.DropUp
	next.Duration = m.cfg.Duration
	next.Content = popup.Text(m.trayView(1))
	next.ContentKey = strconv.Itoa(m.list.Len()) + "|" + m.input.Value() + "|" + strconv.FormatBool(m.showCreate())
	m.tray.SetProps(next)
	m.tray.OnRenderCommitted()
}

// Status returns the live-region text announcing the selection while the
// widget has focus.
func (m *Model[T]) Status() string {
	if !m.IsFocused() {
		return ""
	}
	if len(m.values) == 0 {
		return m.cfg.Messages.NoneSelected
	}
	texts := make([]string, len(m.values))
	for i, v := range m.values {
		texts[i] = m.cfg.Text(v)
	}
	return m.cfg.Messages.SelectedItems + ": " + strings.Join(texts, ", ")
}

func (m *Model[T]) width() int {
	return max(m.Width(), ui.MinFieldWidth)
}

func (m *Model[T]) trayView(progress float64) string {
	s := styles.T().S()
	inner := m.width() - ui.BorderWidth

	empty := m.cfg.Messages.EmptyList
	if m.available > 0 {
		empty = m.cfg.Messages.EmptyFilter
	}
	body := ""
	if m.list.Len() > 0 || !m.showCreate() {
		body = m.list.View(inner, empty)
	}
	if m.showCreate() {
		row := render.Pad(render.Label(strconv.Quote(m.input.Value())+" "+m.cfg.Messages.CreateNew, inner), inner)
		if m.createFocused() {
			row = s.Cursor.Render(row)
		} else {
			row = s.Error.Render(row)
		}
		if body != "" {
			body += "\n"
		}
		body += row
	}

	frame := popup.NewFrame(body, m.width())
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

func (m *Model[T]) tagsView() string {
	s := styles.T().S()
	tags := make([]string, len(m.values))
	for i, v := range m.values {
		label := "[" + render.Label(m.cfg.Text(v), 20) + " ×]"
		if i == m.focusedTag {
			tags[i] = s.TagFocused.Render(label)
		} else {
			tags[i] = s.Tag.Render(label)
		}
	}
	return strings.Join(tags, " ")
}

// View implements ui.Widget.
func (m *Model[T]) View() string {
	w := m.width()
	icon := styles.T().S().Muted.Render("▾")
	if m.cfg.Busy {
		icon = styles.Shimmer("•••", styles.T().Warning, styles.T().Primary)
	}

	left := m.input.View()
	if tags := m.tagsView(); tags != "" {
		left = tags + " " + left
	}
	left = render.Truncate(left, w-8)
	field := styles.FieldStyle(m.IsFocused(), m.cfg.Disabled).
		Width(w - ui.BorderWidth).
		Render(render.Row(left, icon, w-4))

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
