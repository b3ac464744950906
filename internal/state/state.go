// Package state persists the widget selection history in SQLite.
package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName         = "dropwidgets"
	dbFileName      = "history.db"
	DefaultDebounce = 500 * time.Millisecond
)

type Manager struct {
	db       *sql.DB
	debounce time.Duration
	now      func() time.Time
	log      *slog.Logger

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   []Selection
}

// Option configures a Manager.
type Option func(*Manager)

// WithDebounce sets the delay between the last recorded selection and the
// write.
func WithDebounce(d time.Duration) Option {
	return func(m *Manager) { m.debounce = d }
}

// WithLogger sets the logger used for background write failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock overrides the clock stamping selections.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// Open opens the history database under the XDG data directory.
func Open(opts ...Option) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, opts...)
}

// OpenPath opens the history database at path, creating it if needed.
func OpenPath(path string, opts ...Option) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps in-memory databases shared and serializes writes.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return newManager(db, opts...), nil
}

func newManager(db *sql.DB, opts ...Option) *Manager {
	m := &Manager{
		db:       db,
		debounce: DefaultDebounce,
		now:      time.Now,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Close writes pending selections and closes the database.
func (m *Manager) Close() error {
	flushErr := m.Flush()
	return errors.Join(flushErr, m.db.Close())
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// RecordSelection queues a selection. Queued selections are written
// together once no other selection arrived for the debounce delay.
func (m *Manager) RecordSelection(widgetID, value, label string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = append(m.pending, Selection{
		WidgetID: widgetID,
		Value:    value,
		Label:    label,
		Count:    1,
		LastUsed: m.now(),
	})

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		if err := m.Flush(); err != nil {
			m.log.Error("save selection history", "err", err)
		}
	})
}

// Flush writes the queued selections now.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	return saveSelections(context.Background(), m.db, pending)
}

// Recent returns the n most recently selected values of a widget, newest
// first.
func (m *Manager) Recent(widgetID string, n int) ([]Selection, error) {
	return recentSelections(context.Background(), m.db, widgetID, n)
}

// SaveValues stores the values a widget currently holds, replacing the
// previous ones.
func (m *Manager) SaveValues(widgetID string, values []string) error {
	return saveValues(context.Background(), m.db, widgetID, values)
}

// GetValues returns the values stored for a widget in their saved order.
func (m *Manager) GetValues(widgetID string) ([]string, error) {
	return getValues(context.Background(), m.db, widgetID)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
