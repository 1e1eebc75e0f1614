package rows

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
folders:
  - _id: 1
    persistentId: inbox
    folderUri: content://mail/account/1/folder/1
    name: Inbox
    capabilities: 5
    hasChildren: 0
    conversationListUri: content://mail/account/1/folder/1/conversations
    childFoldersListUri: content://mail/account/1/folder/1/children
    unreadCount: 3
    totalCount: 12
    type: 2
    bgColor: -16777216
    hierarchicalDesc: Inbox
    lastMessageTimestamp: 1666265460000
  - _id: 2
    folderUri: content://mail/account/1/folder/2
    name: Work
    hasChildren: 1
    childFoldersListUri: content://mail/account/1/folder/2/children
    hierarchicalDesc: Work
`

func TestLoadFixture(t *testing.T) {
	list, err := LoadFixture(strings.NewReader(sampleFixture))
	require.NoError(t, err)
	require.Len(t, list, 2)

	folders, err := folder.FromRows(list)
	require.NoError(t, err)

	inbox := folders[0]
	assert.Equal(t, int32(1), inbox.ID)
	assert.Equal(t, "inbox", inbox.PersistentID)
	assert.Equal(t, "Inbox", inbox.Name)
	assert.True(t, inbox.IsInbox())
	assert.False(t, inbox.HasChildren)
	assert.True(t, inbox.ChildFoldersListURI.IsZero())
	assert.Equal(t, "-16777216", inbox.BgColor)
	assert.Equal(t, int64(1666265460000), inbox.LastMessageTimestamp)
	assert.True(t, inbox.IsInitialized())

	work := folders[1]
	assert.True(t, work.HasChildren)
	assert.Equal(t, "content://mail/account/1/folder/2/children", work.ChildFoldersListURI.String())
	assert.Equal(t, "", work.PersistentID)
	assert.True(t, work.ConversationListURI.IsZero())
	assert.False(t, work.IsInitialized())
}

func TestLoadFixtureUnknownColumn(t *testing.T) {
	_, err := LoadFixture(strings.NewReader("folders:\n  - colour: red\n"))
	assert.Error(t, err)
}

func TestLoadEmptyFixture(t *testing.T) {
	list, err := LoadFixture(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLoadFixtureFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "folders.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(sampleFixture), 0600))

	list, err := LoadFixtureFile(fileName)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = LoadFixtureFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
