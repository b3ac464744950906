// Package config loads the widget settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "dropwidgets"

// ErrParse marks a config file that exists but does not decode.
var ErrParse = errors.New("invalid configuration")

type Config struct {
	Popup       PopupConfig       `koanf:"popup"`
	Combobox    ComboboxConfig    `koanf:"combobox"`
	Multiselect MultiselectConfig `koanf:"multiselect"`
	Log         LogConfig         `koanf:"log"`
	History     HistoryConfig     `koanf:"history"`

	// Overrides for the texts shown by the widgets; empty keeps the default.
	Messages MessagesConfig `koanf:"messages"`
}

// PopupConfig holds the tray animation settings.
type PopupConfig struct {
	DurationMS  int    `koanf:"duration_ms"` // slide duration (default: 200)
	DropUp      bool   `koanf:"drop_up"`     // open above the field
	Easing      string `koanf:"easing"`      // "linear", "ease", "ease-in", "ease-out", "ease-in-out"
	Translation string `koanf:"translation"` // "top" or "transform" (default: "top")
}

// ComboboxConfig holds the combobox behavior.
type ComboboxConfig struct {
	Suggest *bool  `koanf:"suggest"` // inline completion (default: true)
	Filter  string `koanf:"filter"`  // filter mode (default: "contains")
}

// MultiselectConfig holds the multiselect behavior.
type MultiselectConfig struct {
	Filter        string `koanf:"filter"`         // filter mode (default: "startsWith")
	CaseSensitive bool   `koanf:"case_sensitive"` // case-sensitive filtering
	MinLength     int    `koanf:"min_length"`     // shortest search that filters (default: 1)
	AllowCreate   *bool  `koanf:"allow_create"`   // offer to create tags (default: true)
}

// LogConfig holds the log destination.
type LogConfig struct {
	File  string `koanf:"file"`  // empty disables logging
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// HistoryConfig holds the selection history settings.
type HistoryConfig struct {
	Enabled    *bool `koanf:"enabled"`     // default: true
	DebounceMS int   `koanf:"debounce_ms"` // delay before writing (default: 500)
	Limit      int   `koanf:"limit"`       // recent selections used for ordering (default: 5)
}

// MessagesConfig overrides widget texts.
type MessagesConfig struct {
	Open          string `koanf:"open"`
	EmptyList     string `koanf:"empty_list"`
	EmptyFilter   string `koanf:"empty_filter"`
	CreateNew     string `koanf:"create_new"`
	SelectedItems string `koanf:"selected_items"`
	NoneSelected  string `koanf:"none_selected"`
}

// Load reads the default config locations. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order (last wins). Missing files are
// skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w: %w", path, ErrParse, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/dropwidgets/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultLogFile returns the log path under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// GetPopupConfig returns the popup configuration with defaults applied.
func (c *Config) GetPopupConfig() PopupConfig {
	cfg := c.Popup
	if cfg.DurationMS <= 0 {
		cfg.DurationMS = 200
	}
	switch cfg.Easing {
	case "linear", "ease", "ease-in", "ease-out", "ease-in-out":
	default:
		cfg.Easing = "ease"
	}
	if cfg.Translation != "transform" {
		cfg.Translation = "top"
	}
	return cfg
}

// Duration returns the slide duration.
func (p PopupConfig) Duration() time.Duration {
	return time.Duration(p.DurationMS) * time.Millisecond
}

// GetComboboxConfig returns the combobox configuration with defaults applied.
func (c *Config) GetComboboxConfig() ComboboxConfig {
	cfg := c.Combobox
	if cfg.Suggest == nil {
		cfg.Suggest = boolPtr(true)
	}
	if cfg.Filter == "" {
		cfg.Filter = "contains"
	}
	return cfg
}

// GetMultiselectConfig returns the multiselect configuration with defaults
// applied.
func (c *Config) GetMultiselectConfig() MultiselectConfig {
	cfg := c.Multiselect
	if cfg.Filter == "" {
		cfg.Filter = "startsWith"
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = 1
	}
	if cfg.AllowCreate == nil {
		cfg.AllowCreate = boolPtr(true)
	}
	return cfg
}

// GetHistoryConfig returns the history configuration with defaults applied.
func (c *Config) GetHistoryConfig() HistoryConfig {
	cfg := c.History
	if cfg.Enabled == nil {
		cfg.Enabled = boolPtr(true)
	}
	if cfg.DebounceMS <= 0 {
		cfg.DebounceMS = 500
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	return cfg
}

// LogLevel parses the configured level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func boolPtr(b bool) *bool {
	return &b
}
