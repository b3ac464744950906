package state

import (
	"context"
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/dropwidgets/internal/db"
)

// Selection is one value picked in a widget.
type Selection struct {
	WidgetID string
	Value    string
	Label    string
	Count    int
	LastUsed time.Time
}

func saveSelections(ctx context.Context, db *sql.DB, sels []Selection) error {
	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO selections (widget_id, value, label, count, last_used_at)
			VALUES (?, ?, ?, 1, ?)
			ON CONFLICT (widget_id, value) DO UPDATE SET
				label = COALESCE(excluded.label, selections.label),
				count = selections.count + 1,
				last_used_at = MAX(selections.last_used_at, excluded.last_used_at)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, s := range sels {
			if _, err := stmt.ExecContext(ctx,
				s.WidgetID, s.Value, dbutil.NullString(s.Label), s.LastUsed.UnixNano(),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func recentSelections(ctx context.Context, db *sql.DB, widgetID string, n int) ([]Selection, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := db.QueryContext(ctx, `
		SELECT value, label, count, last_used_at
		FROM selections
		WHERE widget_id = ?
		ORDER BY last_used_at DESC, value
		LIMIT ?
	`, widgetID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sels []Selection
	for rows.Next() {
		s := Selection{WidgetID: widgetID}
		var label sql.NullString
		var lastUsed int64
		if err := rows.Scan(&s.Value, &label, &s.Count, &lastUsed); err != nil {
			return nil, err
		}
		s.Label = dbutil.NullStringValue(label)
		s.LastUsed = time.Unix(0, lastUsed)
		sels = append(sels, s)
	}
	return sels, rows.Err()
}

func saveValues(ctx context.Context, db *sql.DB, widgetID string, values []string) error {
	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM widget_values WHERE widget_id = ?`, widgetID); err != nil {
			return err
		}
		for i, v := range values {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO widget_values (widget_id, position, value) VALUES (?, ?, ?)
			`, widgetID, i, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func getValues(ctx context.Context, db *sql.DB, widgetID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT value FROM widget_values WHERE widget_id = ? ORDER BY position
	`, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
