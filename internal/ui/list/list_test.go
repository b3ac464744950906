package list

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/dropwidgets/internal/ui/testutil"
)

func newFruitList() Model[string] {
	m := New("fruits", func(s string) string { return s })
	m.SetItems([]string{"apple", "banana", "cherry", "date", "elderberry"})
	return m
}

func TestNavigation(t *testing.T) {
	m := newFruitList()

	assert.Equal(t, 0, m.First())
	assert.Equal(t, 4, m.Last())
	assert.Equal(t, 1, m.Next(0))
	assert.Equal(t, 4, m.Next(4), "next stays on the last option")
	assert.Equal(t, 0, m.Next(-1))
	assert.Equal(t, 0, m.Prev(0), "prev stays on the first option")
	assert.Equal(t, 4, m.Prev(-1))
}

func TestNavigation_Empty(t *testing.T) {
	m := New("empty", func(s string) string { return s })

	assert.Equal(t, -1, m.First())
	assert.Equal(t, -1, m.Last())
	assert.Equal(t, -1, m.Next(0))
	assert.Equal(t, -1, m.Prev(0))
	_, ok := m.Focused()
	assert.False(t, ok)
	assert.Empty(t, m.ActiveDescendant())
}

func TestFocus(t *testing.T) {
	m := newFruitList()

	m.Focus(2)
	got, ok := m.Focused()
	assert.True(t, ok)
	assert.Equal(t, "cherry", got)
	assert.Equal(t, "fruits__option__2", m.ActiveDescendant())

	m.Focus(-1)
	assert.Equal(t, -1, m.FocusedIndex())
	assert.Empty(t, m.ActiveDescendant())
}

func TestSetItems_ClampsFocusAndSelection(t *testing.T) {
	m := newFruitList()
	m.Focus(4)
	m.Select(4)

	m.SetItems([]string{"apple", "banana"})

	assert.Equal(t, 1, m.FocusedIndex())
	assert.Equal(t, -1, m.SelectedIndex())
}

func TestSelect(t *testing.T) {
	m := newFruitList()

	m.Select(1)
	got, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "banana", got)

	m.Select(10)
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestScrollWindow(t *testing.T) {
	m := newFruitList()
	m.SetSize(20, 2)

	m.Focus(4)
	start, end := m.VisibleRange()
	assert.Equal(t, 3, start)
	assert.Equal(t, 5, end)

	m.ResetScroll()
	start, _ = m.VisibleRange()
	assert.Equal(t, 3, start, "focused option stays visible")

	m.Focus(-1)
	m.ResetScroll()
	start, _ = m.VisibleRange()
	assert.Equal(t, 0, start)
}

func TestIndexFunc(t *testing.T) {
	m := newFruitList()

	assert.Equal(t, 3, m.IndexFunc(func(s string) bool { return strings.HasPrefix(s, "d") }))
	assert.Equal(t, -1, m.IndexFunc(func(s string) bool { return s == "fig" }))
}

func TestView(t *testing.T) {
	m := newFruitList()
	m.SetSize(20, 3)
	m.Focus(0)

	lines := testutil.SplitLines(testutil.StripANSI(m.View(10, "none")))

	assert.Len(t, lines, 3)
	assert.Equal(t, "apple     ", lines[0])
	assert.Equal(t, "cherry    ", lines[2])
}

func TestView_TruncatesLongLabels(t *testing.T) {
	m := New("x", func(s string) string { return s })
	m.SetItems([]string{"elderberry"})

	assert.Equal(t, "elderbe…", testutil.StripANSI(m.View(8, "")))
}

func TestView_Empty(t *testing.T) {
	m := New("empty", func(s string) string { return s })

	assert.Equal(t, "There are no items", testutil.StripANSI(m.View(40, "There are no items")))
}
