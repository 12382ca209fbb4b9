package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/trendspot/sqlite"
	"github.com/stretchr/testify/require"
)

func TestDB_Open_InMemory(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	require.NoError(t, db.Close())
}

func TestDB_Open_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trendspot.db")

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	require.FileExists(t, path)
}

func TestDB_Close_Unopened(t *testing.T) {
	t.Parallel()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Close())
}
