package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_AppliesPragmas(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, filepath.Join(t.TempDir(), "nested", "agent.db"))
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestConnect_EmptyPath(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.Error(t, err)
}

func TestConnect_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }

	_, err := Connect(context.Background(), filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, filepath.Join(t.TempDir(), "agent.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	for _, table := range []string{"projects", "threads", "memory_entries", "semantic_memory_entries", "prompt_profiles"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/a.db")
	assert.True(t, strings.HasPrefix(dsn, "/tmp/a.db?"))
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "busy_timeout%285000%29")
}
