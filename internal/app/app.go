// Package app is the demo screen: a combobox and a multiselect sharing one
// animation driver, with their selections kept in the history store.
package app

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dropwidgets/internal/config"
	"github.com/llehouerou/dropwidgets/internal/errmsg"
	"github.com/llehouerou/dropwidgets/internal/filter"
	"github.com/llehouerou/dropwidgets/internal/keymap"
	"github.com/llehouerou/dropwidgets/internal/state"
	"github.com/llehouerou/dropwidgets/internal/ui"
	"github.com/llehouerou/dropwidgets/internal/ui/combobox"
	"github.com/llehouerou/dropwidgets/internal/ui/helpbindings"
	"github.com/llehouerou/dropwidgets/internal/ui/multiselect"
	"github.com/llehouerou/dropwidgets/internal/ui/popup"
	"github.com/llehouerou/dropwidgets/internal/ui/transition"
)

// Widget ids, also used as history keys.
const (
	FruitID = "fruit"
	TagsID  = "tags"
)

// Options override the configuration from the command line.
type Options struct {
	DropUp   *bool
	Duration time.Duration
}

// Model is the root application model.
type Model struct {
	Fruit *combobox.Model[string]
	Tags  *multiselect.Model[string]
	Focus int

	Help        helpbindings.Model
	HelpVisible bool

	Driver   *transition.TickDriver
	Keys     *keymap.Resolver
	StateMgr state.Interface
	Log      *slog.Logger

	LastAction string
	ErrorMsg   string
	Width      int
	Height     int
}

// New builds the demo from configuration. The history store orders the
// fruits by recent use and restores the saved tags.
func New(cfg *config.Config, stateMgr state.Interface, logger *slog.Logger, opts Options) (Model, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pc := cfg.GetPopupConfig()
	if opts.DropUp != nil {
		pc.DropUp = *opts.DropUp
	}
	duration := pc.Duration()
	if opts.Duration > 0 {
		duration = opts.Duration
	}
	var tm popup.TranslationMap
	if pc.Translation == "transform" {
		tm = popup.DefaultTranslation
	}

	cc := cfg.GetComboboxConfig()
	comboMode, err := filter.ParseMode(cc.Filter)
	if err != nil {
		return Model{}, fmt.Errorf("combobox filter: %w", err)
	}
	mc := cfg.GetMultiselectConfig()
	multiMode, err := filter.ParseMode(mc.Filter)
	if err != nil {
		return Model{}, fmt.Errorf("multiselect filter: %w", err)
	}

	m := Model{
		Driver:   transition.NewTickDriver(),
		Keys:     keymap.NewResolver(keymap.ByContext("global")),
		StateMgr: stateMgr,
		Log:      logger,
		Help:     helpbindings.New(),
	}

	fruits := fruitData
	if recent, err := stateMgr.Recent(FruitID, cfg.GetHistoryConfig().Limit); err != nil {
		m.fail(errmsg.OpHistoryLoad, err)
	} else {
		fruits = orderByHistory(fruits, recent)
	}

	tags, err := stateMgr.GetValues(TagsID)
	if err != nil {
		m.fail(errmsg.OpHistoryLoad, err)
	}

	m.Fruit = combobox.New(combobox.Config[string]{
		ID:          FruitID,
		Data:        fruits,
		Suggest:     *cc.Suggest,
		Filter:      filter.Options{Mode: comboMode},
		DropUp:      pc.DropUp,
		Duration:    duration,
		Placeholder: "pick a fruit",
		Messages: combobox.Messages{
			Open:        cfg.Messages.Open,
			EmptyList:   cfg.Messages.EmptyList,
			EmptyFilter: cfg.Messages.EmptyFilter,
		},
		Driver:         m.Driver,
		Easing:         pc.Easing,
		TranslationMap: tm,
		Logger:         logger.With("widget", FruitID),
	})

	var create func(string) string
	if *mc.AllowCreate {
		create = func(text string) string { return text }
	}
	m.Tags = multiselect.New(multiselect.Config[string]{
		ID:     TagsID,
		Data:   mergeData(tagData, tags),
		Values: tags,
		Filter: filter.Options{
			Mode:          multiMode,
			CaseSensitive: mc.CaseSensitive,
			MinLength:     mc.MinLength,
		},
		Create:      create,
		DropUp:      pc.DropUp,
		Duration:    duration,
		Placeholder: "add tags",
		Messages: multiselect.Messages{
			Open:          cfg.Messages.Open,
			CreateNew:     cfg.Messages.CreateNew,
			EmptyList:     cfg.Messages.EmptyList,
			EmptyFilter:   cfg.Messages.EmptyFilter,
			SelectedItems: cfg.Messages.SelectedItems,
			NoneSelected:  cfg.Messages.NoneSelected,
		},
		Driver:         m.Driver,
		Easing:         pc.Easing,
		TranslationMap: tm,
		Logger:         logger.With("widget", TagsID),
	})

	return m, nil
}

// Init implements tea.Model. The first widget takes the focus.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	for _, w := range m.widgets() {
		cmds = append(cmds, w.Init())
	}
	cmds = append(cmds, m.focused().Focus())
	return tea.Batch(cmds...)
}

func (m Model) widgets() []ui.Widget {
	return []ui.Widget{m.Fruit, m.Tags}
}

func (m Model) focused() ui.Widget {
	return m.widgets()[m.Focus]
}

// focusedContext is the key binding context of the focused widget.
func (m Model) focusedContext() string {
	if m.Focus == 0 {
		return "combobox"
	}
	return "multiselect"
}

func (m *Model) fail(op errmsg.Op, err error) {
	m.ErrorMsg = errmsg.Format(op, err)
	m.Log.Error(string(op), "err", err)
}

// orderByHistory moves recently picked items to the front, most recent
// first. Unknown history entries are ignored.
func orderByHistory(items []string, recent []state.Selection) []string {
	out := make([]string, 0, len(items))
	for _, s := range recent {
		if slices.Contains(items, s.Value) && !slices.Contains(out, s.Value) {
			out = append(out, s.Value)
		}
	}
	for _, it := range items {
		if !slices.Contains(out, it) {
			out = append(out, it)
		}
	}
	return out
}

// mergeData appends saved values missing from the options, such as tags
// created in an earlier session.
func mergeData(data, saved []string) []string {
	out := slices.Clone(data)
	for _, v := range saved {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
