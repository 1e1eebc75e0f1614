package folder

import "fmt"

// Row is a positional record from the folder provider. Columns follow Projection.
// Implementations may block while fetching data: do not decode rows on a latency sensitive goroutine.
type Row interface {
	ColumnCount() int
	Int(column int) (int32, error)
	Int64(column int) (int64, error)
	// String returns an empty string for a null column
	String(column int) (string, error)
}

// Column indexes in Projection
const (
	ColumnID = iota
	ColumnPersistentID
	ColumnURI
	ColumnName
	ColumnCapabilities
	ColumnHasChildren
	ColumnSyncWindow
	ColumnConversationListURI
	ColumnChildFoldersListURI
	ColumnUnseenCount
	ColumnUnreadCount
	ColumnTotalCount
	ColumnRefreshURI
	ColumnSyncStatus
	ColumnLastSyncResult
	ColumnType
	ColumnIconResID
	ColumnNotificationIconResID
	ColumnBgColor
	ColumnFgColor
	ColumnLoadMoreURI
	ColumnHierarchicalDesc
	ColumnLastMessageTimestamp
)

// Projection is the list of columns expected from the provider, in order
var Projection = []string{
	ColumnID:                    "_id",
	ColumnPersistentID:          "persistentId",
	ColumnURI:                   "folderUri",
	ColumnName:                  "name",
	ColumnCapabilities:          "capabilities",
	ColumnHasChildren:           "hasChildren",
	ColumnSyncWindow:            "syncWindow",
	ColumnConversationListURI:   "conversationListUri",
	ColumnChildFoldersListURI:   "childFoldersListUri",
	ColumnUnseenCount:           "unseenConversationCount",
	ColumnUnreadCount:           "unreadCount",
	ColumnTotalCount:            "totalCount",
	ColumnRefreshURI:            "refreshUri",
	ColumnSyncStatus:            "syncStatus",
	ColumnLastSyncResult:        "lastSyncResult",
	ColumnType:                  "type",
	ColumnIconResID:             "iconResId",
	ColumnNotificationIconResID: "notificationIconResId",
	ColumnBgColor:               "bgColor",
	ColumnFgColor:               "fgColor",
	ColumnLoadMoreURI:           "loadMoreUri",
	ColumnHierarchicalDesc:      "hierarchicalDesc",
	ColumnLastMessageTimestamp:  "lastMessageTimestamp",
}

// ColumnIndex returns the position of a column name in Projection, or -1
func ColumnIndex(name string) int {
	for index, column := range Projection {
		if column == name {
			return index
		}
	}
	return -1
}

// rowReader keeps the first error so the whole row can be read in sequence
type rowReader struct {
	row Row
	err *DecodeError
}

func (r *rowReader) fail(column int, err error) {
	if r.err == nil {
		r.err = &DecodeError{Column: column, Err: err}
	}
}

func (r *rowReader) int32(column int) int32 {
	if r.err != nil {
		return 0
	}
	value, err := r.row.Int(column)
	if err != nil {
		r.fail(column, err)
	}
	return value
}

func (r *rowReader) int64(column int) int64 {
	if r.err != nil {
		return 0
	}
	value, err := r.row.Int64(column)
	if err != nil {
		r.fail(column, err)
	}
	return value
}

func (r *rowReader) string(column int) string {
	if r.err != nil {
		return ""
	}
	value, err := r.row.String(column)
	if err != nil {
		r.fail(column, err)
	}
	return value
}

// FromRow builds a folder from a provider row. Parent is never set.
func FromRow(row Row) (*Folder, error) {
	if row == nil {
		return nil, &DecodeError{Column: -1, Err: fmt.Errorf("%w: nil row", ErrColumnCount)}
	}
	if count := row.ColumnCount(); count != len(Projection) {
		return nil, &DecodeError{Column: -1, Err: fmt.Errorf("%w: expected %d but found %d", ErrColumnCount, len(Projection), count)}
	}
	r := &rowReader{row: row}
	f := &Folder{
		ID:           r.int32(ColumnID),
		PersistentID: r.string(ColumnPersistentID),
		URI:          ParseURI(r.string(ColumnURI)),
		Name:         r.string(ColumnName),
		Capabilities: Capability(r.int32(ColumnCapabilities)),
		// 1 for true, 0 for false
		HasChildren:           r.int32(ColumnHasChildren) == 1,
		SyncWindow:            r.int32(ColumnSyncWindow),
		ConversationListURI:   optionalURI(r.string(ColumnConversationListURI)),
		ChildFoldersListURI:   optionalURI(r.string(ColumnChildFoldersListURI)),
		UnseenCount:           r.int32(ColumnUnseenCount),
		UnreadCount:           r.int32(ColumnUnreadCount),
		TotalCount:            r.int32(ColumnTotalCount),
		RefreshURI:            optionalURI(r.string(ColumnRefreshURI)),
		SyncStatus:            SyncStatus(r.int32(ColumnSyncStatus)),
		LastSyncResult:        SyncResult(r.int32(ColumnLastSyncResult)),
		Type:                  Type(r.int32(ColumnType)),
		IconResID:             r.int32(ColumnIconResID),
		NotificationIconResID: r.int32(ColumnNotificationIconResID),
		BgColor:               r.string(ColumnBgColor),
		FgColor:               r.string(ColumnFgColor),
		LoadMoreURI:           optionalURI(r.string(ColumnLoadMoreURI)),
		HierarchicalDesc:      r.string(ColumnHierarchicalDesc),
		LastMessageTimestamp:  r.int64(ColumnLastMessageTimestamp),
	}
	if r.err != nil {
		return nil, r.err
	}
	if !f.HasChildren {
		f.ChildFoldersListURI = NoURI
	}
	return f, nil
}

// FromRows decodes all the rows, stopping at the first error
func FromRows(rows []Row) ([]*Folder, error) {
	folders := make([]*Folder, 0, len(rows))
	for index, row := range rows {
		f, err := FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", index, err)
		}
		folders = append(folders, f)
	}
	return folders, nil
}
