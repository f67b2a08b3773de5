// Package content describes the folders and leaf items shown by the folder
// browsers, and scans the local photo archive.
package content

import (
	"path"
	"strings"
)

// Kind separates folders from leaves.
type Kind int

const (
	Folder Kind = iota
	Leaf
)

// LeafKind drives icon selection and activation behaviour.
type LeafKind string

const (
	Image    LeafKind = "image"
	Video    LeafKind = "video"
	Document LeafKind = "document"
	Other    LeafKind = "other"
)

var leafKinds = map[string]LeafKind{
	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".bmp":  Image,
	".gif":  Image,
	".webp": Image,
	".tif":  Image,
	".tiff": Image,
	".mp4":  Video,
	".mpeg": Video,
	".mpg":  Video,
	".m4v":  Video,
	".mkv":  Video,
	".mov":  Video,
	".txt":  Document,
	".md":   Document,
	".pdf":  Document,
	".doc":  Document,
	".docx": Document,
}

// Classify returns the leaf kind for a file name, case-insensitively.
func Classify(name string) LeafKind {
	if k, ok := leafKinds[strings.ToLower(path.Ext(name))]; ok {
		return k
	}
	return Other
}

// IsImage reports whether name has a displayable image extension.
func IsImage(name string) bool {
	return Classify(name) == Image
}

// Entry is a folder or a leaf. Locator is opaque to navigation: a filesystem
// path for the local archive, a remote path for the clip archive.
type Entry struct {
	Kind     Kind
	Name     string
	Locator  string
	LeafKind LeafKind
}

// NewFolder builds a folder entry.
func NewFolder(name, locator string) Entry {
	return Entry{Kind: Folder, Name: name, Locator: locator}
}

// NewLeaf builds a leaf entry classified by name.
func NewLeaf(name, locator string) Entry {
	return Entry{Kind: Leaf, Name: name, Locator: locator, LeafKind: Classify(name)}
}

func (e Entry) IsFolder() bool { return e.Kind == Folder }

// Listing is the content of one folder split by kind.
type Listing struct {
	Folders []Entry
	Leaves  []Entry
}

// Split partitions entries into a Listing, keeping their order.
func Split(entries []Entry) Listing {
	var l Listing
	for _, e := range entries {
		if e.IsFolder() {
			l.Folders = append(l.Folders, e)
		} else {
			l.Leaves = append(l.Leaves, e)
		}
	}
	return l
}

// IsEmpty reports a folder with neither subfolders nor leaves.
func (l Listing) IsEmpty() bool {
	return len(l.Folders) == 0 && len(l.Leaves) == 0
}

// LeavesOnly reports a folder holding leaves and no subfolders.
func (l Listing) LeavesOnly() bool {
	return len(l.Folders) == 0 && len(l.Leaves) > 0
}

// FindFolder returns the subfolder named name.
func (l Listing) FindFolder(name string) (Entry, bool) {
	for _, f := range l.Folders {
		if f.Name == name {
			return f, true
		}
	}
	return Entry{}, false
}
