package combobox

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/llehouerou/dropwidgets/internal/filter"
	"github.com/llehouerou/dropwidgets/internal/ui/popup"
)

// Messages are the texts shown to the user.
type Messages struct {
	Open        string
	EmptyList   string
	EmptyFilter string
}

// DefaultMessages returns the built-in texts.
func DefaultMessages() Messages {
	return Messages{
		Open:        "open combobox",
		EmptyList:   "There are no items in this list",
		EmptyFilter: "The filter returned no results",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.Open == "" {
		m.Open = d.Open
	}
	if m.EmptyList == "" {
		m.EmptyList = d.EmptyList
	}
	if m.EmptyFilter == "" {
		m.EmptyFilter = d.EmptyFilter
	}
	return m
}

// Config configures a combobox.
type Config[T comparable] struct {
	// ID identifies the widget in action messages and element ids.
	ID   string
	Data []T
	// Text renders an item. Defaults to fmt.Sprint.
	Text func(T) string

	// Suggest completes the typed text inline with the first matching option.
	Suggest bool
	// Filter narrows the list while typing free text.
	Filter filter.Options

	Disabled bool
	ReadOnly bool
	Busy     bool

	DropUp      bool
	Duration    time.Duration
	Placeholder string
	Messages    Messages

	// Tray collaborators. A nil Driver opens and closes instantly.
	Driver         popup.Driver
	Easing         string
	TranslationMap popup.TranslationMap
	Logger         *slog.Logger
}

func (c Config[T]) withDefaults() Config[T] {
	if c.ID == "" {
		c.ID = "combobox"
	}
	if c.Text == nil {
		c.Text = func(v T) string { return fmt.Sprint(v) }
	}
	c.Messages = c.Messages.withDefaults()
	return c
}
