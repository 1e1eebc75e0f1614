package store

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	bolt "go.etcd.io/bbolt"
)

const (
	// InMemory is the store name selecting the memory backend
	InMemory         = ":memory:"
	lockCheckTimeout = 200 * time.Millisecond
)

type Backend interface {
	// DebugLogger sets a logger to send debug information to
	DebugLogger(logger lib.Logger)
	// Close the backend
	Close() error
	// Put saves the folders, replacing the ones already stored with the same URI
	Put(folders ...*folder.Folder) error
	Get(uri folder.URI) (*folder.Folder, error)
	// Raw returns the folder in its parcel form
	Raw(uri folder.URI) ([]byte, error)
	// List all the folders in URI order
	List() ([]*folder.Folder, error)
	Delete(uri folder.URI) error
}

// verify interface
var (
	_ Backend = &FolderStore{}
	_ Backend = &Memory{}
)

// Open returns a ready to use backend: a bbolt file, or the memory backend for InMemory
func Open(name string, logger lib.Logger) (Backend, error) {
	if name == InMemory {
		backend := NewMemory()
		backend.DebugLogger(logger)
		return backend, nil
	}
	backend, err := NewFolderStoreWithLogger(name, logger)
	if err != nil {
		return nil, err
	}
	err = backend.Init()
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return backend, nil
}

// InUse returns true when another handle holds the lock on the bbolt file.
// A missing file or the memory backend is never in use.
func InUse(name string) (bool, error) {
	if name == InMemory {
		return false, nil
	}
	_, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	db, err := bolt.Open(name, 0600, &bolt.Options{Timeout: lockCheckTimeout, ReadOnly: true})
	if errors.Is(err, bolt.ErrTimeout) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, db.Close()
}
