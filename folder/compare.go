package folder

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Compare orders folders by name, ignoring case.
// Both folders need a name: ErrPrecondition is returned otherwise.
func Compare(a, b *Folder) (int, error) {
	if a == nil || a.Name == "" {
		return 0, fmt.Errorf("%w: folder on the left has no name", ErrPrecondition)
	}
	if b == nil || b.Name == "" {
		return 0, fmt.Errorf("%w: folder on the right has no name", ErrPrecondition)
	}
	fold := cases.Fold()
	return strings.Compare(fold.String(a.Name), fold.String(b.Name)), nil
}

// Sort orders the folders by name. The slice is left untouched when a folder has no name.
func Sort(folders []*Folder) error {
	for index, f := range folders {
		if f == nil || f.Name == "" {
			return fmt.Errorf("%w: folder at position %d has no name", ErrPrecondition, index)
		}
	}
	fold := cases.Fold()
	keys := make(map[*Folder]string, len(folders))
	for _, f := range folders {
		keys[f] = fold.String(f.Name)
	}
	sort.SliceStable(folders, func(i, j int) bool {
		return keys[folders[i]] < keys[folders[j]]
	})
	return nil
}
