package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/ragvault/internal/core/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	data := []byte(`{"version":"1.0"}`)
	require.NoError(t, store.Save(ctx, "snap.json", data))

	got, err := store.Load(ctx, "snap.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSaveReplacesExisting(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "snap.json", []byte("one")))
	require.NoError(t, store.Save(ctx, "snap.json", []byte("two")))

	got, err := store.Load(ctx, "snap.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	infos, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "old.json", []byte("a")))
	require.NoError(t, store.Save(ctx, "new.json", []byte("bb")))

	// Directory mtimes can collide; force distinct timestamps.
	now := time.Now()
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.json"), now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "new.json"), now, now))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "new.json", infos[0].Filename)
	assert.Equal(t, int64(2), infos[0].Size)
	assert.Equal(t, "old.json", infos[1].Filename)
}

func TestListIgnoresNonSnapshotFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "snap.json", []byte("a")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))

	infos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "snap.json", infos[0].Filename)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "snap.json", []byte("a")))
	require.NoError(t, store.Delete(ctx, "snap.json"))

	_, err = store.Load(ctx, "snap.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = store.Delete(ctx, "snap.json")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRejectsPathEscape(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.json", "a/b.json"} {
		assert.ErrorIs(t, store.Save(ctx, name, []byte("x")), domain.ErrPersistence, "name=%q", name)
	}
}
