package cmd

import (
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/rows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countProgress struct {
	count int
}

func (p *countProgress) Increment() {
	p.count++
}

func (p *countProgress) Stop() {}

func folderRow(t *testing.T, uri, name, path string) rows.Values {
	t.Helper()
	row := rows.NewValues()
	require.NoError(t, row.Set("_id", 1))
	require.NoError(t, row.Set("folderUri", uri))
	require.NoError(t, row.Set("name", name))
	require.NoError(t, row.Set("conversationListUri", uri+"/conversations"))
	require.NoError(t, row.Set("type", int32(folder.TypeDefault)))
	require.NoError(t, row.Set("hierarchicalDesc", path))
	return row
}

func TestDecodeRows(t *testing.T) {
	progress := &countProgress{}
	list := []folder.Row{
		folderRow(t, "content://mail/1/folder/work", "Work", "Work"),
		folderRow(t, "content://mail/1/folder/projects", "Projects", "Work/Projects"),
	}
	folders, err := decodeRows(list, progress)
	require.NoError(t, err)
	assert.Len(t, folders, 2)
	assert.Equal(t, 2, progress.count)

	require.NoError(t, folder.LinkParents(folders))
	require.NotNil(t, folders[1].Parent)
	assert.Equal(t, "Work", folders[1].Parent.Name)
}

func TestDecodeRowsError(t *testing.T) {
	bad := folderRow(t, "content://mail/1/folder/work", "Work", "Work")
	bad[folder.ColumnUnreadCount] = "many"

	_, err := decodeRows([]folder.Row{bad}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "folder entry 0")
}

func TestCheckAccount(t *testing.T) {
	folders := []*folder.Folder{
		{ID: 1, URI: folder.ParseURI("content://mail/1/folder/work")},
		{ID: 2, URI: folder.ParseURI("content://mail/1/folder/home")},
	}
	assert.NoError(t, checkAccount(folders, ""))
	assert.NoError(t, checkAccount(folders, "content://mail/1/"))
	assert.Error(t, checkAccount(folders, "content://mail/2/"))
}

func TestFolderTable(t *testing.T) {
	folders := []*folder.Folder{
		{
			Name:        "Inbox",
			Type:        folder.TypeInbox,
			UnreadCount: 3,
			TotalCount:  40,
			BgColor:     "-16777216",
		},
		{
			Name:       "Trash",
			Type:       folder.TypeTrash,
			SyncStatus: folder.SyncStatusUserRefresh,
			BgColor:    "not a colour",
		},
	}
	data := folderTable(folders, -1)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"Inbox", "", "3", "40", "inbox", "ok"}, data[1][1:])
	assert.Equal(t, "in progress", data[2][6])
	// invalid colour is hidden
	assert.Equal(t, " ", data[2][0])
}

func TestSyncState(t *testing.T) {
	failed := &folder.Folder{LastSyncResult: folder.NewSyncResult(folder.SyncStatusBackgroundSync, folder.ResultAuthError)}
	assert.Equal(t, "authentication error (background-sync)", syncState(failed))
}
