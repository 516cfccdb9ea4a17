package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes
	// writers, which SQLite needs anyway.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema if it doesn't exist yet.
func (db *DB) RunMigrations() error {
	migration := `
-- Weeks stored per user, keyed by the week's Monday (YYYY-MM-DD)
CREATE TABLE IF NOT EXISTS weeks (
    user_id TEXT NOT NULL,
    week_key TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_id, week_key)
);

-- Work sessions, ordered within their day by position
CREATE TABLE IF NOT EXISTS work_sessions (
    user_id TEXT NOT NULL,
    week_key TEXT NOT NULL,
    day_index INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 4),
    position INTEGER NOT NULL,
    start_time TEXT NOT NULL DEFAULT '',
    end_time TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (user_id, week_key, day_index, position),
    FOREIGN KEY (user_id, week_key) REFERENCES weeks(user_id, week_key) ON DELETE CASCADE
);

-- Per-user preferences kept on this machine
CREATE TABLE IF NOT EXISTS profiles (
    user_id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Activity log
CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    week_key TEXT,
    activity_type TEXT NOT NULL,
    summary TEXT NOT NULL,
    details TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_user_activity ON activity_log(user_id);
CREATE INDEX IF NOT EXISTS idx_week_activity ON activity_log(week_key);
CREATE INDEX IF NOT EXISTS idx_created_at ON activity_log(created_at);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
