// Package folder defines the mail folder entity shared between the folder provider
// and its consumers, and the codecs used to build it from provider rows and parcels.
package folder

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// nullStringURI is a conversation list URI found in the wild when a provider serialized a null value
const nullStringURI = "null"

// Verbose adds the URI and name of the folder to its String representation
var Verbose = false

// Folder is a collection of conversations, and perhaps other folders.
type Folder struct {
	// Unique id of this folder
	ID int32
	// Persistent (across installations) id of this folder
	PersistentID string
	// The provider URI that returns this folder for this account. Identity of the folder.
	URI URI
	// The human visible name for this folder
	Name         string
	Capabilities Capability
	HasChildren  bool
	// How many days worth of data is retained on the device
	SyncWindow          int32
	ConversationListURI URI
	// Only present when HasChildren is true
	ChildFoldersListURI URI
	UnseenCount         int32
	UnreadCount         int32
	TotalCount          int32
	RefreshURI          URI
	SyncStatus          SyncStatus
	LastSyncResult      SyncResult
	Type                Type
	// 0 means no icon
	IconResID             int32
	NotificationIconResID int32
	// Decimal representation of an ARGB colour, empty for none
	BgColor     string
	FgColor     string
	LoadMoreURI URI
	// Full hierarchy of the folder: parent/folder1/folder2
	HierarchicalDesc string
	// Set by the application at runtime, never read from a row
	Parent *Folder
	// Milliseconds since epoch of the last message received
	LastMessageTimestamp int64

	placeholder bool
}

// NewUninitialized creates a placeholder folder, not usable until the caller fills in the details.
// IsInitialized always returns false on it.
func NewUninitialized() *Folder {
	return &Folder{
		placeholder: true,
	}
}

// Equal returns true if both folders share the same URI
func (f *Folder) Equal(other *Folder) bool {
	if f == nil || other == nil {
		return false
	}
	return f.URI == other.URI
}

// Hash of the folder URI, 0 for a folder with no URI
func (f *Folder) Hash() uint64 {
	if f.URI.IsZero() {
		return 0
	}
	return xxhash.Sum64String(f.URI.String())
}

func (f *Folder) String() string {
	sb := &strings.Builder{}
	sb.WriteString("[folder id=")
	sb.WriteString(strconv.FormatInt(int64(f.ID), 10))
	if Verbose {
		sb.WriteString(", uri=")
		sb.WriteString(f.URI.String())
		sb.WriteString(", name=")
		sb.WriteString(f.Name)
	}
	sb.WriteString("]")
	return sb.String()
}

// IsInitialized returns false for a placeholder and for a folder without a usable conversation list URI
func (f *Folder) IsInitialized() bool {
	return !f.placeholder &&
		!f.ConversationListURI.IsZero() &&
		f.ConversationListURI.String() != nullStringURI
}

// IsSyncInProgress indicates whether network activity (sync) is occurring for this folder
func (f *Folder) IsSyncInProgress() bool {
	return f.SyncStatus.InProgress()
}

// WasSyncSuccessful returns true if the previous sync was successful
func (f *Folder) WasSyncSuccessful() bool {
	return f.LastSyncResult.Result() == ResultSuccess
}

func (f *Folder) SupportsCapability(capability Capability) bool {
	return f.Capabilities.Has(capability)
}

// IsImportantOnly returns true if the folder only shows important messages
func (f *Folder) IsImportantOnly() bool {
	return f.SupportsCapability(CapabilityOnlyImportant)
}

func (f *Folder) IsType(folderType Type) bool {
	return f.Type.Has(folderType)
}

func (f *Folder) IsInbox() bool {
	return f.IsType(TypeInbox)
}

func (f *Folder) IsTrash() bool {
	return f.IsType(TypeTrash)
}

func (f *Folder) IsDraft() bool {
	return f.IsType(TypeDraft)
}

// IsViewAll is the special folder used to display all mail for an account
func (f *Folder) IsViewAll() bool {
	return f.IsType(TypeAllMail)
}

// IsProviderFolder returns true when the type of the folder matches a provider defined folder
func (f *Folder) IsProviderFolder() bool {
	return !f.IsType(TypeDefault)
}
