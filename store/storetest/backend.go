// Package storetest runs the same tests on every store.Backend implementation
package storetest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFolder(uri, name string) *folder.Folder {
	return &folder.Folder{
		ID:                  1,
		URI:                 folder.ParseURI(uri),
		Name:                name,
		ConversationListURI: folder.ParseURI(uri + "/conversations"),
		Capabilities:        folder.CapabilitySyncable | folder.CapabilityCanHoldMail,
		Type:                folder.TypeDefault,
		UnreadCount:         2,
		TotalCount:          12,
		BgColor:             "-16777216",
	}
}

// RunTestsOnBackend is the unit tests runner called by the concrete implementations of store.Backend.
// The backend must be empty.
func RunTestsOnBackend(t *testing.T, backend store.Backend) {
	require.NotNil(t, backend)

	t.Run("EmptyList", func(t *testing.T) {
		list, err := backend.List()
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("PutGetWithParent", func(t *testing.T) {
		work := sampleFolder("content://mail/1/folder/work", "Work")
		projects := sampleFolder("content://mail/1/folder/work.projects", "Projects")
		require.NoError(t, folder.SetParent(projects, work))

		require.NoError(t, backend.Put(work, projects))
		defer func() {
			_ = backend.Delete(work.URI)
			_ = backend.Delete(projects.URI)
		}()

		loaded, err := backend.Get(projects.URI)
		require.NoError(t, err)
		assert.Equal(t, projects, loaded)
		require.NotNil(t, loaded.Parent)
		assert.True(t, loaded.Parent.Equal(work))
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := backend.Get(folder.ParseURI("content://mail/1/folder/missing"))
		assert.ErrorIs(t, err, lib.ErrFolderNotFound)

		_, err = backend.Raw(folder.ParseURI("content://mail/1/folder/missing"))
		assert.ErrorIs(t, err, lib.ErrFolderNotFound)
	})

	t.Run("PutWithoutURI", func(t *testing.T) {
		err := backend.Put(&folder.Folder{Name: "nowhere"})
		assert.Error(t, err)
	})

	t.Run("RawIsParcel", func(t *testing.T) {
		inbox := sampleFolder("content://mail/1/folder/inbox", "Inbox")
		require.NoError(t, backend.Put(inbox))
		defer func() { _ = backend.Delete(inbox.URI) }()

		raw, err := backend.Raw(inbox.URI)
		require.NoError(t, err)
		expected, err := folder.Marshal(inbox)
		require.NoError(t, err)
		assert.Equal(t, expected, raw)
	})

	t.Run("ListInURIOrder", func(t *testing.T) {
		require.NoError(t, backend.Put(
			sampleFolder("content://mail/1/folder/c", "C"),
			nil,
			sampleFolder("content://mail/1/folder/a", "A"),
			sampleFolder("content://mail/1/folder/b", "B"),
		))
		list, err := backend.List()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"content://mail/1/folder/a",
			"content://mail/1/folder/b",
			"content://mail/1/folder/c",
		}, folder.URIStrings(list))

		for _, f := range list {
			require.NoError(t, backend.Delete(f.URI))
		}
		list, err = backend.List()
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		assert.NoError(t, backend.Delete(folder.ParseURI("content://mail/1/folder/missing")))
	})

	t.Run("ConcurrentPut", func(t *testing.T) {
		const count = 20
		wg := sync.WaitGroup{}
		for i := 0; i < count; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := backend.Put(sampleFolder(fmt.Sprintf("content://mail/1/folder/%02d", i), fmt.Sprintf("Folder %d", i)))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		list, err := backend.List()
		require.NoError(t, err)
		assert.Len(t, list, count)
		for _, f := range list {
			require.NoError(t, backend.Delete(f.URI))
		}
	})
}
