package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesDataDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data", "fitness.db")

	database, err := Init("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer database.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file should exist")
}

func TestInitEnablesForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitness.db")

	database, err := Init("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer database.Close()

	var enabled int
	require.NoError(t, database.Get(&enabled, `PRAGMA foreign_keys`))
	assert.Equal(t, 1, enabled)
}

func TestRunMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitness.db")

	database, err := Init("sqlite", path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database.DB, "sqlite"))

	// All three tables exist and accept rows.
	_, err = database.Exec(`INSERT INTO users (id, handle, display_name, created_at) VALUES (1, 'jess_r', 'Jess', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO challenges (user_id, text, frequency, created_at, active) VALUES (1, '35 pushups per day', 'daily', '2026-01-01T00:00:00Z', TRUE)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO completions (user_id, challenge_id, completed_at) VALUES (1, 1, '2026-01-02T00:00:00Z')`)
	require.NoError(t, err)
}

func TestRunMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitness.db")

	database, err := Init("sqlite", path)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database.DB, "sqlite"))
	require.NoError(t, RunMigrations(database.DB, "sqlite"))
}

func TestDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", dialect("sqlite"))
	assert.Equal(t, "postgres", dialect("pgx"))
	assert.Equal(t, "mysql", dialect("mysql"))
}
