package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	// Nothing persisted yet.
	_, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	identity := Identity{
		UserID:    "user-1",
		Email:     "admin@hrms.com",
		Role:      "admin",
		FirstName: "John",
		LastName:  "Admin",
	}
	require.NoError(t, storage.Save(ctx, identity))

	loaded, found, err := storage.Load(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, identity, loaded)

	require.NoError(t, storage.Clear(ctx))
	_, found, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// Clearing twice is fine.
	assert.NoError(t, storage.Clear(ctx))
}

func TestFileStorage_CorruptFileTreatedAsNoSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	// The corrupt file was removed.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileStorage_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")

	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, storage.Save(context.Background(), Identity{UserID: "user-1"}))

	_, found, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
}

func TestFileStorage_EmptyPath(t *testing.T) {
	_, err := NewFileStorage("")
	assert.Error(t, err)
}
