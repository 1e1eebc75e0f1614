package store_test

import (
	"path/filepath"
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/parcel"
	"github.com/creativeprojects/folders/store"
	"github.com/creativeprojects/folders/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	backend := store.NewMemory()
	backend.DebugLogger(lib.NewTestLogger(t, "memory"))
	defer backend.Close()

	storetest.RunTestsOnBackend(t, backend)
}

func TestBoltBackend(t *testing.T) {
	backend, err := store.Open(filepath.Join(t.TempDir(), "folders.db"), lib.NewTestLogger(t, "bolt"))
	require.NoError(t, err)
	defer backend.Close()

	storetest.RunTestsOnBackend(t, backend)
}

func TestOpenInMemory(t *testing.T) {
	backend, err := store.Open(store.InMemory, nil)
	require.NoError(t, err)
	defer backend.Close()

	_, ok := backend.(*store.Memory)
	assert.True(t, ok)
}

func TestMemoryWithEmptyRegistry(t *testing.T) {
	backend := store.NewMemory().WithRegistry(parcel.NewRegistry(nil))
	uri := folder.ParseURI("content://mail/1/folder/1")
	require.NoError(t, backend.Put(&folder.Folder{URI: uri, Name: "Work"}))

	_, err := backend.Get(uri)
	assert.ErrorIs(t, err, parcel.ErrUnknownClass)
}

func TestInUse(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "folders.db")

	inUse, err := store.InUse(filename)
	require.NoError(t, err)
	assert.False(t, inUse, "missing file")

	backend, err := store.Open(filename, nil)
	require.NoError(t, err)

	inUse, err = store.InUse(filename)
	require.NoError(t, err)
	assert.True(t, inUse, "opened for writing")

	require.NoError(t, backend.Close())
	inUse, err = store.InUse(filename)
	require.NoError(t, err)
	assert.False(t, inUse, "closed")

	inUse, err = store.InUse(store.InMemory)
	require.NoError(t, err)
	assert.False(t, inUse)
}
