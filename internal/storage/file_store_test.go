package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krywa5/forkify/internal/domain"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data", "forkify.json"))
	require.NoError(t, err)
	return store
}

func TestSetGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "forkify:favorites", `[{"recipe_id":"47746"}]`))

	val, err := store.Get(ctx, "forkify:favorites")
	require.NoError(t, err)
	assert.Equal(t, `[{"recipe_id":"47746"}]`, val)
}

func TestGetAbsentKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestGetBeforeFirstSet(t *testing.T) {
	store := newTestStore(t)

	// No file exists yet; absent file behaves like an empty store.
	_, err := store.Get(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	val, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", val)
}

func TestPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forkify.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "k", "v"))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	val, err := second.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forkify.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
}
