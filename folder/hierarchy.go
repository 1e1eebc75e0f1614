package folder

import (
	"fmt"
	"strings"

	"github.com/creativeprojects/folders/lib"
)

// SetParent assigns parent to child, refusing an assignment that would create a cycle.
// A nil parent detaches the child.
func SetParent(child, parent *Folder) error {
	for current := parent; current != nil; current = current.Parent {
		if current == child || (!child.URI.IsZero() && current.Equal(child)) {
			return fmt.Errorf("%w: %s under %s", ErrParentCycle, child, parent)
		}
	}
	child.Parent = parent
	return nil
}

// Ancestors returns the parent chain of the folder, closest first
func (f *Folder) Ancestors() []*Folder {
	ancestors := make([]*Folder, 0)
	for current := f.Parent; current != nil; current = current.Parent {
		ancestors = append(ancestors, current)
	}
	return ancestors
}

// LinkParents sets the parent of each folder from its hierarchical description,
// when a folder with the parent path is present in the list.
func LinkParents(folders []*Folder) error {
	byPath := make(map[string]*Folder, len(folders))
	for _, f := range folders {
		path := normalizePath(f.HierarchicalDesc)
		if path == "" {
			continue
		}
		byPath[path] = f
	}
	for _, f := range folders {
		parts := lib.SplitPath(f.HierarchicalDesc)
		if len(parts) < 2 {
			continue
		}
		parent, found := byPath[strings.Join(parts[:len(parts)-1], lib.PathDelimiter)]
		if !found {
			continue
		}
		err := SetParent(f, parent)
		if err != nil {
			return err
		}
	}
	return nil
}

func normalizePath(desc string) string {
	return strings.Join(lib.SplitPath(desc), lib.PathDelimiter)
}
