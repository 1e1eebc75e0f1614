package rows

import (
	"net/url"
	"strings"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/emersion/go-imap"
)

// defined by RFC 3348 (CHILDREN extension)
const hasChildrenAttr = "\\HasChildren"

// Mailbox describes one IMAP mailbox of an account
type Mailbox struct {
	// Sequential id of the folder in the account
	ID int32
	// Base URI of the account, like content://mail/account/1
	AccountURI string
	Info       *imap.MailboxInfo
	// Status is optional: counts are left to 0 when nil
	Status *imap.MailboxStatus
	// SyncWindow in days
	SyncWindow int32
}

// FromMailbox builds a folder row from IMAP mailbox information.
func FromMailbox(mbox Mailbox) Values {
	values := NewValues()
	if mbox.Info == nil {
		return values
	}
	info := mbox.Info
	base := strings.TrimSuffix(mbox.AccountURI, "/") + "/folder/" + url.PathEscape(info.Name)
	path := lib.VerifyDelimiter(info.Name, info.Delimiter, lib.PathDelimiter)
	hasChildren := hasAttribute(info.Attributes, hasChildrenAttr)
	selectable := !hasAttribute(info.Attributes, imap.NoSelectAttr)

	values[folder.ColumnID] = mbox.ID
	values[folder.ColumnPersistentID] = info.Name
	values[folder.ColumnURI] = base
	values[folder.ColumnName] = displayName(info)
	values[folder.ColumnCapabilities] = int32(capabilitiesFromAttributes(info.Attributes))
	values[folder.ColumnHasChildren] = hasChildren
	values[folder.ColumnSyncWindow] = mbox.SyncWindow
	if selectable {
		values[folder.ColumnConversationListURI] = base + "/conversations"
		values[folder.ColumnRefreshURI] = base + "/refresh"
		values[folder.ColumnLoadMoreURI] = base + "/more"
	}
	if hasChildren {
		values[folder.ColumnChildFoldersListURI] = base + "/children"
	}
	values[folder.ColumnType] = int32(TypeFromAttributes(info.Name, info.Attributes))
	values[folder.ColumnHierarchicalDesc] = path
	values[folder.ColumnSyncStatus] = int32(folder.SyncStatusNone)
	values[folder.ColumnLastSyncResult] = int32(folder.NewSyncResult(folder.SyncStatusNone, folder.ResultSuccess))

	if mbox.Status != nil {
		values[folder.ColumnUnseenCount] = mbox.Status.Recent
		values[folder.ColumnUnreadCount] = mbox.Status.Unseen
		values[folder.ColumnTotalCount] = mbox.Status.Messages
	}
	return values
}

// TypeFromAttributes maps the special-use attributes of a mailbox to folder type flags
func TypeFromAttributes(name string, attributes []string) folder.Type {
	var folderType folder.Type
	if strings.EqualFold(name, imap.InboxName) {
		folderType |= folder.TypeInbox
	}
	for _, attribute := range attributes {
		switch attribute {
		case imap.DraftsAttr:
			folderType |= folder.TypeDraft
		case imap.SentAttr:
			folderType |= folder.TypeSent
		case imap.TrashAttr:
			folderType |= folder.TypeTrash
		case imap.JunkAttr:
			folderType |= folder.TypeSpam
		case imap.FlaggedAttr:
			folderType |= folder.TypeStarred
		case imap.AllAttr:
			folderType |= folder.TypeAllMail
		}
	}
	if folderType == 0 {
		return folder.TypeDefault
	}
	return folderType
}

func capabilitiesFromAttributes(attributes []string) folder.Capability {
	capabilities := folder.CapabilitySyncable | folder.CapabilityDelete
	if !hasAttribute(attributes, imap.NoSelectAttr) {
		capabilities |= folder.CapabilityCanHoldMail | folder.CapabilityCanAcceptMovedMessages
	}
	if hasAttribute(attributes, hasChildrenAttr) {
		capabilities |= folder.CapabilityParent
	}
	if hasAttribute(attributes, imap.ArchiveAttr) {
		capabilities |= folder.CapabilityArchive
	}
	if hasAttribute(attributes, imap.JunkAttr) {
		capabilities |= folder.CapabilityReportNotSpam
	} else {
		capabilities |= folder.CapabilityReportSpam
	}
	return capabilities
}

// displayName is the last element of the mailbox hierarchy
func displayName(info *imap.MailboxInfo) string {
	if info.Delimiter == "" {
		return info.Name
	}
	index := strings.LastIndex(info.Name, info.Delimiter)
	if index < 0 {
		return info.Name
	}
	return info.Name[index+len(info.Delimiter):]
}

func hasAttribute(attributes []string, attribute string) bool {
	for _, candidate := range attributes {
		if strings.EqualFold(candidate, attribute) {
			return true
		}
	}
	return false
}
