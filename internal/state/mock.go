package state

import (
	"slices"
	"time"
)

// Mock is a test double for Manager. Selections are recorded immediately.
type Mock struct {
	selections []Selection
	values     map[string][]string
	closed     bool
}

// NewMock creates a new mock history store for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string][]string)}
}

func (m *Mock) RecordSelection(widgetID, value, label string) {
	m.selections = append(m.selections, Selection{
		WidgetID: widgetID,
		Value:    value,
		Label:    label,
		Count:    1,
		LastUsed: time.Now(),
	})
}

func (m *Mock) Flush() error { return nil }

func (m *Mock) Recent(widgetID string, n int) ([]Selection, error) {
	var out []Selection
	for i := len(m.selections) - 1; i >= 0 && len(out) < n; i-- {
		s := m.selections[i]
		if s.WidgetID != widgetID {
			continue
		}
		if slices.ContainsFunc(out, func(o Selection) bool { return o.Value == s.Value }) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *Mock) SaveValues(widgetID string, values []string) error {
	m.values[widgetID] = slices.Clone(values)
	return nil
}

func (m *Mock) GetValues(widgetID string) ([]string, error) {
	return slices.Clone(m.values[widgetID]), nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) Selections() []Selection { return m.selections }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
