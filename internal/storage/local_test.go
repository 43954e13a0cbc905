package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPutOpenRoundTrip(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	key := "org-1/dataset-1/abcd1234_photo.jpg"
	payload := []byte("jpeg bytes go here")

	require.NoError(t, store.Put(ctx, key, "image/jpeg", payload))

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestLocalHead(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a/b/c.bin", "application/octet-stream", make([]byte, 4096)))

	info, err := store.Head(ctx, "a/b/c.bin")
	require.NoError(t, err)
	assert.Equal(t, int64(4096), info.ByteSize)
	// Local disk does not record a content type.
	assert.Empty(t, info.ContentType)
}

func TestLocalMissingKey(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	_, err := store.Open(ctx, "nope/missing.bin")
	assert.True(t, errors.Is(err, ErrObjectNotFound))

	_, err = store.Head(ctx, "nope/missing.bin")
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestLocalOverwrite(t *testing.T) {
	store := NewLocal(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "text/plain", []byte("first")))
	require.NoError(t, store.Put(ctx, "k", "text/plain", []byte("second version")))

	info, err := store.Head(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(len("second version")), info.ByteSize)
}

func TestLocalLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store := NewLocal(root)
	require.NoError(t, store.Put(context.Background(), "x/y.bin", "", []byte("data")))

	entries, err := os.ReadDir(filepath.Join(root, "x"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "y.bin", entries[0].Name())
}
