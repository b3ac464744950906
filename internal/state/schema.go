package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS selections (
			widget_id TEXT NOT NULL,
			value TEXT NOT NULL,
			label TEXT,
			count INTEGER NOT NULL DEFAULT 0,
			last_used_at INTEGER NOT NULL,
			PRIMARY KEY (widget_id, value)
		);

		CREATE INDEX IF NOT EXISTS idx_selections_recent ON selections(widget_id, last_used_at DESC);

		CREATE TABLE IF NOT EXISTS widget_values (
			widget_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (widget_id, position)
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
