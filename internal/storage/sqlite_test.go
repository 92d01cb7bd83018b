package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := OpenSQLite(context.Background(), dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestSQLitePersistence(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Write and close
	store, err := OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "gamesPlayed", "7"))
	require.NoError(t, store.Close())

	// Reopen and read
	store2, err := OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	defer store2.Close()

	val, ok, err := store2.Get(ctx, "gamesPlayed")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", val)
}

func TestSQLiteEmptyPath(t *testing.T) {
	_, err := OpenSQLite(context.Background(), "")
	require.Error(t, err)
}

func TestSQLiteHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := OpenSQLite(context.Background(), "~/.t2048/test.db")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(home, ".t2048", "test.db"))
	assert.NoError(t, err)
}
