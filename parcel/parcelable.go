package parcel

import (
	"fmt"
	"sync"
)

// Parcelable is implemented by the types that can flatten themselves into a parcel
type Parcelable interface {
	// ParcelName is the class name written in front of the object so a reader can find its Creator
	ParcelName() string
	WriteToParcel(p *Parcel) error
}

// Creator rebuilds a Parcelable from a parcel. The registry is the one the
// enclosing read was given and must be used to read nested parcelables.
type Creator interface {
	CreateFromParcel(p *Parcel, registry *Registry) (Parcelable, error)
}

// CreatorFunc adapts a function to the Creator interface
type CreatorFunc func(p *Parcel, registry *Registry) (Parcelable, error)

func (f CreatorFunc) CreateFromParcel(p *Parcel, registry *Registry) (Parcelable, error) {
	return f(p, registry)
}

// Registry resolves class names to creators. A nil *Registry resolves through DefaultRegistry.
type Registry struct {
	mu       sync.RWMutex
	creators map[string]Creator
	parent   *Registry
}

// DefaultRegistry is used when no registry is given to a read
var DefaultRegistry = NewRegistry(nil)

// NewRegistry creates an empty registry. Names not found are looked up in parent, when not nil.
func NewRegistry(parent *Registry) *Registry {
	return &Registry{
		creators: make(map[string]Creator),
		parent:   parent,
	}
}

// Register adds or replaces the creator for a class name
func (r *Registry) Register(name string, creator Creator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[name] = creator
}

// Lookup returns the creator registered for the name in this registry or its parents
func (r *Registry) Lookup(name string) (Creator, bool) {
	if r == nil {
		r = DefaultRegistry
	}
	for current := r; current != nil; current = current.parent {
		current.mu.RLock()
		creator, ok := current.creators[name]
		current.mu.RUnlock()
		if ok {
			return creator, true
		}
	}
	return nil, false
}

// Register adds a creator to the DefaultRegistry
func Register(name string, creator Creator) {
	DefaultRegistry.Register(name, creator)
}

// WriteParcelable writes the class name of the value followed by its fields.
// A nil value is written as a null class name.
func (p *Parcel) WriteParcelable(value Parcelable) error {
	if value == nil {
		p.WriteNullString()
		return nil
	}
	err := p.WriteString(value.ParcelName())
	if err != nil {
		return err
	}
	return value.WriteToParcel(p)
}

// ReadParcelable reads a value written by WriteParcelable. It returns nil without error for a null value.
func (p *Parcel) ReadParcelable(registry *Registry) (Parcelable, error) {
	name, ok, err := p.ReadNullableString()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	creator, found := registry.Lookup(name)
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	value, err := creator.CreateFromParcel(p, registry)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	if value == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilParcelable, name)
	}
	return value, nil
}
