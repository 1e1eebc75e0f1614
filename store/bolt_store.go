// Package store keeps a local cache of folders in a bbolt database.
// Folders are saved in their parcel form, keyed by URI.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/parcel"
	bolt "go.etcd.io/bbolt"
)

const (
	metadataBucket  = "metadata"
	folderBucket    = "folders"
	versionKey      = "version"
	boltFileVersion = 1
)

var ErrVersionMismatch = errors.New("unsupported store version")

type FolderStore struct {
	dbFile   string
	db       *bolt.DB
	log      lib.Logger
	registry *parcel.Registry
}

func NewFolderStore(filename string) (*FolderStore, error) {
	return NewFolderStoreWithLogger(filename, nil)
}

func NewFolderStoreWithLogger(filename string, logger lib.Logger) (*FolderStore, error) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	options := *bolt.DefaultOptions
	options.Timeout = 10 * time.Second

	err := os.MkdirAll(filepath.Dir(filename), 0700)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", filename, err)
	}

	db, err := bolt.Open(filename, 0600, &options)
	if err != nil {
		return nil, err
	}

	return &FolderStore{
		dbFile: filename,
		db:     db,
		log:    logger,
	}, nil
}

func (s *FolderStore) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	s.log = logger
}

// WithRegistry sets the registry used to read the folders back (nil for the default one)
func (s *FolderStore) WithRegistry(registry *parcel.Registry) *FolderStore {
	s.registry = registry
	return s
}

// Init creates the buckets and checks the file version
func (s *FolderStore) Init() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(metadataBucket))
		if err != nil {
			return err
		}
		if existing := bucket.Get([]byte(versionKey)); existing != nil {
			version, err := deserializeInt(existing)
			if err != nil {
				return fmt.Errorf("cannot read store version: %w", err)
			}
			if version != boltFileVersion {
				return fmt.Errorf("%w: %d", ErrVersionMismatch, version)
			}
		} else {
			version, err := serializeInt(boltFileVersion)
			if err != nil {
				return err
			}
			err = bucket.Put([]byte(versionKey), version)
			if err != nil {
				return err
			}
		}
		_, err = tx.CreateBucketIfNotExists([]byte(folderBucket))
		return err
	})
}

func (s *FolderStore) Close() error {
	return s.db.Close()
}

// Put saves the folders, replacing the ones already stored with the same URI
func (s *FolderStore) Put(folders ...*folder.Folder) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(folderBucket))
		if bucket == nil {
			return lib.ErrStoreNotReady
		}
		for _, f := range folders {
			if f == nil {
				continue
			}
			if f.URI.IsZero() {
				return fmt.Errorf("cannot save %s: folder has no URI", f)
			}
			data, err := folder.Marshal(f)
			if err != nil {
				return fmt.Errorf("cannot encode %s: %w", f, err)
			}
			err = bucket.Put([]byte(f.URI.String()), data)
			if err != nil {
				return fmt.Errorf("cannot save %s: %w", f, err)
			}
			s.log.Printf("Folder saved: uri=%q name=%q size=%d", f.URI.String(), f.Name, len(data))
		}
		return nil
	})
}

// Get returns the folder saved under this URI, or lib.ErrFolderNotFound
func (s *FolderStore) Get(uri folder.URI) (*folder.Folder, error) {
	var f *folder.Folder
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(folderBucket))
		if bucket == nil {
			return lib.ErrStoreNotReady
		}
		data := bucket.Get([]byte(uri.String()))
		if data == nil {
			return lib.ErrFolderNotFound
		}
		var err error
		f, err = folder.Unmarshal(data, s.registry)
		return err
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Raw returns the parcel bytes saved under this URI
func (s *FolderStore) Raw(uri folder.URI) ([]byte, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(folderBucket))
		if bucket == nil {
			return lib.ErrStoreNotReady
		}
		data := bucket.Get([]byte(uri.String()))
		if data == nil {
			return lib.ErrFolderNotFound
		}
		// data is only valid during the transaction
		raw = make([]byte, len(data))
		copy(raw, data)
		return nil
	})
	return raw, err
}

// List returns all the folders, in URI order
func (s *FolderStore) List() ([]*folder.Folder, error) {
	list := make([]*folder.Folder, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(folderBucket))
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(key, value []byte) error {
			s.log.Printf("* Key %q", string(key))
			f, err := folder.Unmarshal(value, s.registry)
			if err != nil {
				return fmt.Errorf("cannot decode folder %q: %w", string(key), err)
			}
			list = append(list, f)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the folder saved under this URI. Deleting a missing folder is not an error.
func (s *FolderStore) Delete(uri folder.URI) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(folderBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(uri.String()))
	})
}

// Backup writes a consistent copy of the database to filename
func (s *FolderStore) Backup(filename string) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.CopyFile(filename, 0600)
	})
}
