package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_PlainPath(t *testing.T) {
	db, err := New(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))
}

func TestNew_DSNWithQueryParams(t *testing.T) {
	// A URI DSN already carries a "?", so the pragma must append with "&".
	dsn := "file:" + filepath.Join(t.TempDir(), "blog.db") + "?cache=shared"

	db, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(db))

	var enabled int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	require.Equal(t, 1, enabled)
}
