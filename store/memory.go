package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/parcel"
)

// Memory keeps the folder parcels in a map. It is safe for concurrent use.
type Memory struct {
	mu       sync.RWMutex
	data     map[string][]byte
	log      lib.Logger
	registry *parcel.Registry
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
		log:  &lib.NoLog{},
	}
}

func (m *Memory) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	m.log = logger
}

// WithRegistry sets the registry used to read the folders back (nil for the default one)
func (m *Memory) WithRegistry(registry *parcel.Registry) *Memory {
	m.registry = registry
	return m
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) Put(folders ...*folder.Folder) error {
	encoded := make(map[string][]byte, len(folders))
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
		encoded[f.URI.String()] = data
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, data := range encoded {
		m.data[key] = data
		m.log.Printf("Folder saved: uri=%q size=%d", key, len(data))
	}
	return nil
}

func (m *Memory) Get(uri folder.URI) (*folder.Folder, error) {
	m.mu.RLock()
	data, ok := m.data[uri.String()]
	m.mu.RUnlock()
	if !ok {
		return nil, lib.ErrFolderNotFound
	}
	return folder.Unmarshal(data, m.registry)
}

func (m *Memory) Raw(uri folder.URI) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[uri.String()]
	if !ok {
		return nil, lib.ErrFolderNotFound
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return raw, nil
}

func (m *Memory) List() ([]*folder.Folder, error) {
	m.mu.RLock()
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parcels := make([][]byte, len(keys))
	for i, key := range keys {
		parcels[i] = m.data[key]
	}
	m.mu.RUnlock()

	list := make([]*folder.Folder, 0, len(keys))
	for i, data := range parcels {
		f, err := folder.Unmarshal(data, m.registry)
		if err != nil {
			return nil, fmt.Errorf("cannot decode folder %q: %w", keys[i], err)
		}
		list = append(list, f)
	}
	return list, nil
}

func (m *Memory) Delete(uri folder.URI) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, uri.String())
	return nil
}
