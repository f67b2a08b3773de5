package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/camdash/camdash/internal/breadcrumb"
)

// LocalSource lists folders and images below a root directory.
type LocalSource struct {
	root string
}

// NewLocalSource creates a source rooted at root.
func NewLocalSource(root string) (*LocalSource, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &LocalSource{root: abs}, nil
}

func (s *LocalSource) Root() string { return s.root }

// List returns the subfolders and images of the folder at p. Hidden entries
// and non-image files are skipped; both groups are sorted by name.
func (s *LocalSource) List(p breadcrumb.Path) (Listing, error) {
	dir := p.Local(s.root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, fmt.Errorf("list %s: %w", dir, err)
	}

	var l Listing
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		switch {
		case e.IsDir():
			l.Folders = append(l.Folders, NewFolder(name, full))
		case IsImage(name):
			l.Leaves = append(l.Leaves, NewLeaf(name, full))
		}
	}

	sortByName(l.Folders)
	sortByName(l.Leaves)
	return l, nil
}

func sortByName(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
