// Package list provides the generic option listbox shown inside widget trays.
package list

import (
	"strconv"
	"strings"

	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/cursor"
	"github.com/llehouerou/dropwidgets/internal/ui/render"
	"github.com/llehouerou/dropwidgets/internal/ui/styles"
)

// DefaultHeight is the number of option rows shown when no size is set.
const DefaultHeight = 8

// Model is a listbox over items of type T. It tracks the focused option
// (possibly none), the selected option and the scroll window. The owner
// decides what keys mean and calls the navigation helpers.
type Model[T any] struct {
	ui.Base
	id       string
	items    []T
	text     func(T) string
	cursor   cursor.Cursor
	selected int
}

// New creates an empty listbox. id prefixes option element ids; text
// renders an item.
func New[T any](id string, text func(T) string) Model[T] {
	m := Model[T]{
		id:       id,
		text:     text,
		cursor:   cursor.New(1),
		selected: cursor.None,
	}
	m.SetSize(0, DefaultHeight)
	return m
}

// ID returns the listbox element id.
func (m Model[T]) ID() string {
	return m.id
}

// SetItems replaces all items and clamps focus and selection.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	if m.selected >= len(items) {
		m.selected = cursor.None
	}
	m.cursor.EnsureVisible(len(items), m.rows())
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Text returns the display text of item i.
func (m Model[T]) Text(i int) string {
	return m.text(m.items[i])
}

// IndexFunc returns the first index whose item satisfies f, or -1.
func (m Model[T]) IndexFunc(f func(T) bool) int {
	for i, it := range m.items {
		if f(it) {
			return i
		}
	}
	return -1
}

// First returns the index of the first option, or -1 when empty.
func (m Model[T]) First() int {
	if len(m.items) == 0 {
		return -1
	}
	return 0
}

// Last returns the index of the last option, or -1 when empty.
func (m Model[T]) Last() int {
	return len(m.items) - 1
}

// Next returns the option after i, staying on the last one. With i = -1 it
// returns the first option.
func (m Model[T]) Next(i int) int {
	if len(m.items) == 0 {
		return -1
	}
	return min(i+1, len(m.items)-1)
}

// Prev returns the option before i, staying on the first one. With i = -1
// it returns the last option.
func (m Model[T]) Prev(i int) int {
	switch {
	case len(m.items) == 0:
		return -1
	case i < 0:
		return len(m.items) - 1
	}
	return max(i-1, 0)
}

// Focused returns the focused item.
func (m Model[T]) Focused() (T, bool) {
	if !m.cursor.Valid(len(m.items)) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// FocusedIndex returns the focused index, or -1.
func (m Model[T]) FocusedIndex() int {
	if !m.cursor.Valid(len(m.items)) {
		return -1
	}
	return m.cursor.Pos()
}

// Focus moves the focus to i and scrolls it into view. A negative index
// clears the focus.
func (m *Model[T]) Focus(i int) {
	if i < 0 || len(m.items) == 0 {
		m.cursor.Clear()
		return
	}
	m.cursor.Jump(i, len(m.items), m.rows())
}

// Selected returns the selected item.
func (m Model[T]) Selected() (T, bool) {
	if m.selected < 0 || m.selected >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.selected], true
}

// SelectedIndex returns the selected index, or -1.
func (m Model[T]) SelectedIndex() int {
	if m.selected >= len(m.items) {
		return -1
	}
	return m.selected
}

// Select marks option i as selected; a negative index clears it.
func (m *Model[T]) Select(i int) {
	if i < 0 || i >= len(m.items) {
		m.selected = cursor.None
		return
	}
	m.selected = i
}

// ResetScroll scrolls back to the top of the list.
func (m *Model[T]) ResetScroll() {
	m.cursor.ScrollTop()
	m.cursor.EnsureVisible(len(m.items), m.rows())
}

// VisibleRange returns [start, end) indices of the rendered options.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.rows())
}

// OptionID returns the element id of option i.
func (m Model[T]) OptionID(i int) string {
	return m.id + "__option__" + strconv.Itoa(i)
}

// ActiveDescendant returns the element id of the focused option, or "".
func (m Model[T]) ActiveDescendant() string {
	if i := m.FocusedIndex(); i >= 0 {
		return m.OptionID(i)
	}
	return ""
}

func (m Model[T]) rows() int {
	return max(m.Height(), 1)
}

// View renders the visible options, one per row, width columns wide.
// empty is shown when there is nothing to list.
func (m Model[T]) View(width int, empty string) string {
	s := styles.T().S()
	if len(m.items) == 0 {
		return s.Muted.Render(render.Label(empty, width))
	}

	focused := m.FocusedIndex()
	start, end := m.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		label := render.Pad(render.Label(m.text(m.items[i]), width), width)
		switch {
		case i == focused:
			lines = append(lines, s.Cursor.Render(label))
		case i == m.selected:
			lines = append(lines, s.Selected.Render(label))
		default:
			lines = append(lines, s.Base.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}
