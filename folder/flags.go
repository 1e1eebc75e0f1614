package folder

import (
	"strconv"
	"strings"
)

// Capability is a bit set of the operations supported by a folder
type Capability int32

const (
	CapabilitySyncable                 Capability = 0x0001
	CapabilityParent                   Capability = 0x0002
	CapabilityCanHoldMail              Capability = 0x0004
	CapabilityCanAcceptMovedMessages   Capability = 0x0008
	CapabilityDelete                   Capability = 0x0020
	CapabilitySupportsSettings         Capability = 0x0040
	CapabilityReportSpam               Capability = 0x0080
	CapabilityReportNotSpam            Capability = 0x0100
	CapabilityMarkImportant            Capability = 0x0200
	CapabilityArchive                  Capability = 0x0400
	CapabilityAllowsRemoveConversation Capability = 0x0800
	CapabilityMultiMove                Capability = 0x1000
	CapabilityOnlyImportant            Capability = 0x2000
	CapabilityReportPhishing           Capability = 0x4000
)

// Has returns true if any of the bits of flag are set
func (c Capability) Has(flag Capability) bool {
	return c&flag != 0
}

func (c Capability) String() string {
	return flagNames(int32(c), capabilityNames)
}

var capabilityNames = []flagName{
	{int32(CapabilitySyncable), "syncable"},
	{int32(CapabilityParent), "parent"},
	{int32(CapabilityCanHoldMail), "can-hold-mail"},
	{int32(CapabilityCanAcceptMovedMessages), "can-accept-moved-messages"},
	{int32(CapabilityDelete), "delete"},
	{int32(CapabilitySupportsSettings), "supports-settings"},
	{int32(CapabilityReportSpam), "report-spam"},
	{int32(CapabilityReportNotSpam), "report-not-spam"},
	{int32(CapabilityMarkImportant), "mark-important"},
	{int32(CapabilityArchive), "archive"},
	{int32(CapabilityAllowsRemoveConversation), "allows-remove-conversation"},
	{int32(CapabilityMultiMove), "multi-move"},
	{int32(CapabilityOnlyImportant), "only-important"},
	{int32(CapabilityReportPhishing), "report-phishing"},
}

// Type is a bit set classifying the role of a folder. 0 is default.
type Type int32

const (
	TypeDefault      Type = 1 << 0
	TypeInbox        Type = 1 << 1
	TypeDraft        Type = 1 << 2
	TypeOutbox       Type = 1 << 3
	TypeSent         Type = 1 << 4
	TypeTrash        Type = 1 << 5
	TypeSpam         Type = 1 << 6
	TypeStarred      Type = 1 << 7
	TypeUnread       Type = 1 << 8
	TypeInboxSection Type = 1 << 9
	TypeSearch       Type = 1 << 10
	TypeAllMail      Type = 1 << 11
)

func (t Type) Has(flag Type) bool {
	return t&flag != 0
}

func (t Type) String() string {
	return flagNames(int32(t), typeNames)
}

var typeNames = []flagName{
	{int32(TypeDefault), "default"},
	{int32(TypeInbox), "inbox"},
	{int32(TypeDraft), "draft"},
	{int32(TypeOutbox), "outbox"},
	{int32(TypeSent), "sent"},
	{int32(TypeTrash), "trash"},
	{int32(TypeSpam), "spam"},
	{int32(TypeStarred), "starred"},
	{int32(TypeUnread), "unread"},
	{int32(TypeInboxSection), "inbox-section"},
	{int32(TypeSearch), "search"},
	{int32(TypeAllMail), "all-mail"},
}

// SyncStatus is a bit set of the sync requests currently running on a folder
type SyncStatus int32

const (
	SyncStatusNone               SyncStatus = 0
	SyncStatusUserRefresh        SyncStatus = 1 << 0
	SyncStatusUserQuery          SyncStatus = 1 << 1
	SyncStatusUserMoreResults    SyncStatus = 1 << 2
	SyncStatusBackgroundSync     SyncStatus = 1 << 3
	SyncStatusInitialSyncNeeded  SyncStatus = 1 << 4
	SyncStatusManualSyncRequired SyncStatus = 1 << 5

	syncInProgress = SyncStatusUserRefresh | SyncStatusUserQuery | SyncStatusUserMoreResults | SyncStatusBackgroundSync
)

// InProgress returns true when a network sync is running
func (s SyncStatus) InProgress() bool {
	return s&syncInProgress != 0
}

func (s SyncStatus) String() string {
	if s == SyncStatusNone {
		return "none"
	}
	return flagNames(int32(s), syncStatusNames)
}

var syncStatusNames = []flagName{
	{int32(SyncStatusUserRefresh), "user-refresh"},
	{int32(SyncStatusUserQuery), "user-query"},
	{int32(SyncStatusUserMoreResults), "user-more-results"},
	{int32(SyncStatusBackgroundSync), "background-sync"},
	{int32(SyncStatusInitialSyncNeeded), "initial-sync-needed"},
	{int32(SyncStatusManualSyncRequired), "manual-sync-required"},
}

// Result codes found in the low nibble of a SyncResult
const (
	ResultSuccess         int32 = 0
	ResultConnectionError int32 = 1
	ResultAuthError       int32 = 2
	ResultSecurityError   int32 = 3
	ResultStorageError    int32 = 4
	ResultInternalError   int32 = 5
)

var resultNames = map[int32]string{
	ResultSuccess:         "success",
	ResultConnectionError: "connection error",
	ResultAuthError:       "authentication error",
	ResultSecurityError:   "security error",
	ResultStorageError:    "storage error",
	ResultInternalError:   "internal error",
}

// SyncResult packs the request code of the last sync in the high bits and its result in the low nibble:
// (requestCode << 4) | result
type SyncResult int32

func NewSyncResult(request SyncStatus, result int32) SyncResult {
	return SyncResult(int32(request)<<4 | result&0x0f)
}

func (r SyncResult) Request() SyncStatus {
	return SyncStatus(int32(r) >> 4)
}

func (r SyncResult) Result() int32 {
	return int32(r) & 0x0f
}

func (r SyncResult) String() string {
	name, ok := resultNames[r.Result()]
	if !ok {
		name = "result " + strconv.Itoa(int(r.Result()))
	}
	return name + " (" + r.Request().String() + ")"
}

type flagName struct {
	value int32
	name  string
}

func flagNames(value int32, names []flagName) string {
	if value == 0 {
		return ""
	}
	output := make([]string, 0, len(names))
	for _, flag := range names {
		if value&flag.value != 0 {
			output = append(output, flag.name)
			value &^= flag.value
		}
	}
	if value != 0 {
		output = append(output, "0x"+strconv.FormatInt(int64(value), 16))
	}
	return strings.Join(output, ", ")
}
