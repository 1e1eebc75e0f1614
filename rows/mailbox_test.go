package rows

import (
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromAttributes(t *testing.T) {
	fixtures := []struct {
		name       string
		attributes []string
		expected   folder.Type
	}{
		{"INBOX", nil, folder.TypeInbox},
		{"Inbox", nil, folder.TypeInbox},
		{"Work", nil, folder.TypeDefault},
		{"Work", []string{imap.NoInferiorsAttr}, folder.TypeDefault},
		{"Trash", []string{imap.TrashAttr}, folder.TypeTrash},
		{"Drafts", []string{imap.DraftsAttr}, folder.TypeDraft},
		{"Sent", []string{imap.SentAttr}, folder.TypeSent},
		{"Spam", []string{imap.JunkAttr}, folder.TypeSpam},
		{"Starred", []string{imap.FlaggedAttr}, folder.TypeStarred},
		{"All Mail", []string{imap.AllAttr, imap.NoInferiorsAttr}, folder.TypeAllMail},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			assert.Equal(t, fixture.expected, TypeFromAttributes(fixture.name, fixture.attributes))
		})
	}
}

func TestFromMailbox(t *testing.T) {
	row := FromMailbox(Mailbox{
		ID:         4,
		AccountURI: "content://mail/account/1/",
		Info: &imap.MailboxInfo{
			Attributes: []string{"\\HasChildren"},
			Delimiter:  ".",
			Name:       "INBOX.Work",
		},
		Status: &imap.MailboxStatus{
			Name:     "INBOX.Work",
			Messages: 20,
			Recent:   1,
			Unseen:   5,
		},
		SyncWindow: 30,
	})

	f, err := folder.FromRow(row)
	require.NoError(t, err)

	assert.Equal(t, int32(4), f.ID)
	assert.Equal(t, "INBOX.Work", f.PersistentID)
	assert.Equal(t, "content://mail/account/1/folder/INBOX.Work", f.URI.String())
	assert.Equal(t, "Work", f.Name)
	assert.Equal(t, "INBOX/Work", f.HierarchicalDesc)
	assert.True(t, f.HasChildren)
	assert.Equal(t, "content://mail/account/1/folder/INBOX.Work/children", f.ChildFoldersListURI.String())
	assert.True(t, f.SupportsCapability(folder.CapabilityParent))
	assert.True(t, f.SupportsCapability(folder.CapabilityCanHoldMail))
	assert.Equal(t, int32(30), f.SyncWindow)
	assert.Equal(t, int32(1), f.UnseenCount)
	assert.Equal(t, int32(5), f.UnreadCount)
	assert.Equal(t, int32(20), f.TotalCount)
	assert.False(t, f.IsProviderFolder())
	assert.True(t, f.WasSyncSuccessful())
	assert.True(t, f.IsInitialized())
}

func TestFromMailboxNotSelectable(t *testing.T) {
	row := FromMailbox(Mailbox{
		ID:         5,
		AccountURI: "content://mail/account/1",
		Info: &imap.MailboxInfo{
			Attributes: []string{imap.NoSelectAttr},
			Delimiter:  "/",
			Name:       "[Gmail]",
		},
	})

	f, err := folder.FromRow(row)
	require.NoError(t, err)
	assert.True(t, f.ConversationListURI.IsZero())
	assert.False(t, f.IsInitialized())
	assert.False(t, f.SupportsCapability(folder.CapabilityCanHoldMail))
	assert.Zero(t, f.TotalCount)
}
