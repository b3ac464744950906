package multiselect

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/llehouerou/dropwidgets/internal/filter"
	"github.com/llehouerou/dropwidgets/internal/ui/popup"
)

// Messages are the texts shown to the user.
type Messages struct {
	Open          string
	CreateNew     string
	EmptyList     string
	EmptyFilter   string
	TagsLabel     string
	SelectedItems string
	NoneSelected  string
	RemoveLabel   string
}

// DefaultMessages returns the built-in texts.
func DefaultMessages() Messages {
	return Messages{
		Open:          "open multiselect",
		CreateNew:     "(create new tag)",
		EmptyList:     "There are no items in this list",
		EmptyFilter:   "The filter returned no results",
		TagsLabel:     "selected items",
		SelectedItems: "selected items",
		NoneSelected:  "no selected items",
		RemoveLabel:   "remove selected item",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	for _, f := range []struct{ v, def *string }{
		{&m.Open, &d.Open},
		{&m.CreateNew, &d.CreateNew},
		{&m.EmptyList, &d.EmptyList},
		{&m.EmptyFilter, &d.EmptyFilter},
		{&m.TagsLabel, &d.TagsLabel},
		{&m.SelectedItems, &d.SelectedItems},
		{&m.NoneSelected, &d.NoneSelected},
		{&m.RemoveLabel, &d.RemoveLabel},
	} {
		if *f.v == "" {
			*f.v = *f.def
		}
	}
	return m
}

// Config configures a multiselect.
type Config[T comparable] struct {
	// ID identifies the widget in action messages and element ids.
	ID     string
	Data   []T
	Values []T
	// Text renders an item. Defaults to fmt.Sprint.
	Text func(T) string

	// Filter narrows the options by the search term. The zero value filters
	// with StartsWith.
	Filter filter.Options
	// Create builds a new item from the search text. Creation is offered only
	// when set.
	Create func(text string) T

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
		c.ID = "multiselect"
	}
	if c.Text == nil {
		c.Text = func(v T) string { return fmt.Sprint(v) }
	}
	if c.Filter.Mode == "" {
		c.Filter.Mode = filter.StartsWith
	}
	c.Messages = c.Messages.withDefaults()
	return c
}
