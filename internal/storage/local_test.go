package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "reports"))
	require.NoError(t, err)

	name, err := store.Save(context.Background(), "../../etc/blood.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_blood.pdf"))
	assert.NotContains(t, name, "/")

	rc, err := store.Open(name)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, store.Remove(name))
	require.NoError(t, store.Remove(name))
	_, err = store.Open(name)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalStoreRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("../secret")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.ErrorIs(t, store.Remove(".."), ErrInvalidName)
}

func TestLocalStoreCancelledSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, "x.pdf", strings.NewReader("data"))
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
