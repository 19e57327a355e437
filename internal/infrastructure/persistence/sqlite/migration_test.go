package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRawDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func tableColumns(t *testing.T, db *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	require.NoError(t, err)
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		require.NoError(t, rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk))
		columns[name] = true
	}
	require.NoError(t, rows.Err())
	return columns
}

func TestMigrator_CreatesAllTables(t *testing.T) {
	db := openRawDB(t)

	require.NoError(t, NewMigrator(db).Migrate())

	for _, table := range []string{"notes", "appointments", "reminders", "settings"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err, "table %s should exist", table)
		assert.Zero(t, count)
	}
	assert.True(t, tableColumns(t, db, "appointments")["notified"])
}

func TestMigrator_IsIdempotent(t *testing.T) {
	db := openRawDB(t)
	migrator := NewMigrator(db)

	require.NoError(t, migrator.Migrate())

	_, err := db.Exec(
		"INSERT INTO notes (title, content, category, note_type, created_at, updated_at) VALUES ('t', 'c', 'general', 'text', '2026-01-01T00:00:00', '2026-01-01T00:00:00')")
	require.NoError(t, err)

	// A second run must not touch existing rows.
	require.NoError(t, migrator.Migrate())

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrator_AddsNotifiedToLegacyAppointments(t *testing.T) {
	db := openRawDB(t)

	// Databases from before the scheduler shipped have appointments
	// without the notified flag.
	_, err := db.Exec(`CREATE TABLE appointments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		dt TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO appointments (title, dt, created_at) VALUES ('old', '2026-01-01T10:00:00', '2025-12-01T00:00:00')")
	require.NoError(t, err)

	require.NoError(t, NewMigrator(db).Migrate())

	assert.True(t, tableColumns(t, db, "appointments")["notified"])

	// Existing rows pick up the default and stay eligible for catch-up.
	var notified int
	require.NoError(t, db.QueryRow("SELECT notified FROM appointments WHERE title = 'old'").Scan(&notified))
	assert.Equal(t, 0, notified)
}
