package folder

import (
	"fmt"
	"strings"

	"github.com/creativeprojects/folders/parcel"
)

const folderParcelName = "folders.Folder"

// placeholderMarker prefixes the name of a placeholder folder in a parcel.
// U+FDD0 is a noncharacter: it never appears in a provider folder name.
const placeholderMarker = "\uFDD0"

func init() {
	parcel.Register(folderParcelName, parcel.CreatorFunc(createFolderFromParcel))
	parcel.Register(uriParcelName, parcel.CreatorFunc(createURIFromParcel))
}

func (f *Folder) ParcelName() string {
	return folderParcelName
}

// WriteToParcel flattens the folder and its parent chain. The parent chain must not contain a cycle.
// Keep the field order in sync with ReadFromParcel.
func (f *Folder) WriteToParcel(p *parcel.Parcel) error {
	w := &parcelWriter{p: p}
	w.int32(f.ID)
	w.string(f.PersistentID)
	w.uri(f.URI)
	if f.placeholder {
		w.string(placeholderMarker + f.Name)
	} else {
		w.string(f.Name)
	}
	w.int32(int32(f.Capabilities))
	p.WriteBool(f.HasChildren)
	w.int32(f.SyncWindow)
	w.uri(f.ConversationListURI)
	w.uri(f.ChildFoldersListURI)
	w.int32(f.UnseenCount)
	w.int32(f.UnreadCount)
	w.int32(f.TotalCount)
	w.uri(f.RefreshURI)
	w.int32(int32(f.SyncStatus))
	w.int32(int32(f.LastSyncResult))
	w.int32(int32(f.Type))
	w.int32(f.IconResID)
	w.int32(f.NotificationIconResID)
	w.string(f.BgColor)
	w.string(f.FgColor)
	w.uri(f.LoadMoreURI)
	w.string(f.HierarchicalDesc)
	w.parent(f.Parent)
	p.WriteInt64(f.LastMessageTimestamp)
	return w.err
}

// ReadFromParcel reads a folder written by WriteToParcel, without its class name header.
// The registry resolves the nested parcelables; nil uses the default registry.
func ReadFromParcel(p *parcel.Parcel, registry *parcel.Registry) (*Folder, error) {
	r := &parcelReader{p: p, registry: registry}
	f := &Folder{}
	f.ID = r.int32()
	f.PersistentID = r.string()
	f.URI = r.uri()
	f.Name = r.string()
	if strings.HasPrefix(f.Name, placeholderMarker) {
		f.Name = strings.TrimPrefix(f.Name, placeholderMarker)
		f.placeholder = true
	}
	f.Capabilities = Capability(r.int32())
	f.HasChildren = r.int32() == 1
	f.SyncWindow = r.int32()
	f.ConversationListURI = r.uri()
	f.ChildFoldersListURI = r.uri()
	f.UnseenCount = r.int32()
	f.UnreadCount = r.int32()
	f.TotalCount = r.int32()
	f.RefreshURI = r.uri()
	f.SyncStatus = SyncStatus(r.int32())
	f.LastSyncResult = SyncResult(r.int32())
	f.Type = Type(r.int32())
	f.IconResID = r.int32()
	f.NotificationIconResID = r.int32()
	f.BgColor = r.string()
	f.FgColor = r.string()
	f.LoadMoreURI = r.uri()
	f.HierarchicalDesc = r.string()
	f.Parent = r.parent()
	f.LastMessageTimestamp = r.int64()
	if r.err != nil {
		return nil, r.err
	}
	return f, nil
}

// Marshal returns the parcel representation of the folder, class name header included.
// A nil folder is written as a null parcelable, which Unmarshal reads back as nil.
func Marshal(f *Folder) ([]byte, error) {
	p := parcel.New()
	var err error
	if f == nil {
		err = p.WriteParcelable(nil)
	} else {
		err = p.WriteParcelable(f)
	}
	if err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Unmarshal reads a folder written by Marshal
func Unmarshal(data []byte, registry *parcel.Registry) (*Folder, error) {
	value, err := parcel.FromBytes(data).ReadParcelable(registry)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	f, ok := value.(*Folder)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAFolder, value.ParcelName())
	}
	return f, nil
}

func createFolderFromParcel(p *parcel.Parcel, registry *parcel.Registry) (parcel.Parcelable, error) {
	return ReadFromParcel(p, registry)
}

type parcelWriter struct {
	p   *parcel.Parcel
	err error
}

func (w *parcelWriter) int32(value int32) {
	w.p.WriteInt32(value)
}

func (w *parcelWriter) string(value string) {
	if w.err != nil {
		return
	}
	w.err = w.p.WriteString(value)
}

func (w *parcelWriter) uri(value URI) {
	if w.err != nil {
		return
	}
	w.err = writeURI(w.p, value)
}

func (w *parcelWriter) parent(value *Folder) {
	if w.err != nil {
		return
	}
	if value == nil {
		w.err = w.p.WriteParcelable(nil)
		return
	}
	w.err = w.p.WriteParcelable(value)
}

type parcelReader struct {
	p        *parcel.Parcel
	registry *parcel.Registry
	err      error
}

func (r *parcelReader) int32() int32 {
	if r.err != nil {
		return 0
	}
	var value int32
	value, r.err = r.p.ReadInt32()
	return value
}

func (r *parcelReader) int64() int64 {
	if r.err != nil {
		return 0
	}
	var value int64
	value, r.err = r.p.ReadInt64()
	return value
}

func (r *parcelReader) string() string {
	if r.err != nil {
		return ""
	}
	var value string
	value, r.err = r.p.ReadString()
	return value
}

func (r *parcelReader) uri() URI {
	if r.err != nil {
		return NoURI
	}
	var value URI
	value, r.err = readURI(r.p, r.registry)
	return value
}

func (r *parcelReader) parent() *Folder {
	if r.err != nil {
		return nil
	}
	value, err := r.p.ReadParcelable(r.registry)
	if err != nil {
		r.err = fmt.Errorf("cannot read parent folder: %w", err)
		return nil
	}
	if value == nil {
		return nil
	}
	parent, ok := value.(*Folder)
	if !ok {
		r.err = fmt.Errorf("%w: parent is %s", ErrNotAFolder, value.ParcelName())
		return nil
	}
	return parent
}
