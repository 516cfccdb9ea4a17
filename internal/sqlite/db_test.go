package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{
		"weeks",
		"work_sessions",
		"profiles",
		"activity_log",
	}

	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}

	// Migrations are idempotent.
	require.NoError(t, db.RunMigrations())
}

// TestForeignKeys verifies that foreign key constraints are enabled
func TestForeignKeys(t *testing.T) {
	db := NewTestDB(t)

	var enabled int
	err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	require.Equal(t, 1, enabled, "foreign keys not enabled")
}

// TestWorkSessionsTable verifies the work_sessions constraints
func TestWorkSessionsTable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO weeks (user_id, week_key) VALUES (?, ?)`, "user1", "2024-04-08")
	require.NoError(t, err)

	_, err = db.ExecContext(ctx,
		`INSERT INTO work_sessions (user_id, week_key, day_index, position, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"user1", "2024-04-08", 0, 0, "09:00", "12:00")
	require.NoError(t, err)

	// Unknown week
	_, err = db.ExecContext(ctx,
		`INSERT INTO work_sessions (user_id, week_key, day_index, position) VALUES (?, ?, ?, ?)`,
		"user1", "2024-04-15", 0, 0)
	require.Error(t, err, "should fail with unknown week")
	require.ErrorContains(t, err, "FOREIGN KEY constraint failed")

	// Saturday
	_, err = db.ExecContext(ctx,
		`INSERT INTO work_sessions (user_id, week_key, day_index, position) VALUES (?, ?, ?, ?)`,
		"user1", "2024-04-08", 5, 0)
	require.Error(t, err, "should fail with day outside the work week")

	// Deleting the week removes its sessions
	_, err = db.ExecContext(ctx, `DELETE FROM weeks WHERE user_id = ?`, "user1")
	require.NoError(t, err)
	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM work_sessions`).Scan(&count))
	require.Zero(t, count)
}
