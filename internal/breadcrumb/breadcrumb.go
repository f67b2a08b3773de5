// Package breadcrumb tracks the current depth inside a folder hierarchy.
package breadcrumb

import (
	"path"
	"path/filepath"
	"strings"
)

// Sentinel is the relative path of a root to itself. A path holding only
// sentinels is at root.
const Sentinel = "."

// Path is an ordered list of folder names below a root. The zero value is at
// root.
type Path struct {
	segments []string
}

// New builds a path from raw segments. Sentinel segments are kept but ignored
// by every query.
func New(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...)}
}

// FromRel splits a slash or OS separated relative path.
func FromRel(rel string) Path {
	rel = filepath.ToSlash(rel)
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return Path{}
	}
	return New(strings.Split(rel, "/")...)
}

// Push descends into segment. Empty, sentinel and multi-level segments are
// rejected.
func (p *Path) Push(segment string) bool {
	if segment == "" || segment == Sentinel || segment == ".." || strings.ContainsRune(segment, '/') {
		return false
	}
	p.segments = append(p.segments, segment)
	return true
}

// Pop removes the deepest segment. At root it changes nothing and reports
// false.
func (p *Path) Pop() (string, bool) {
	for i := len(p.segments) - 1; i >= 0; i-- {
		if p.segments[i] != Sentinel {
			seg := p.segments[i]
			p.segments = p.segments[:i]
			return seg, true
		}
	}
	return "", false
}

// Clear returns to root.
func (p *Path) Clear() {
	p.segments = nil
}

// Truncate keeps the first depth visible segments.
func (p *Path) Truncate(depth int) {
	segs := p.Segments()
	if depth < 0 {
		depth = 0
	}
	if depth >= len(segs) {
		p.segments = segs
		return
	}
	p.segments = segs[:depth]
}

// IsAtRoot is true for an empty path or one made only of sentinels.
func (p Path) IsAtRoot() bool {
	return p.Depth() == 0
}

// Segments returns the visible segments, sentinels removed.
func (p Path) Segments() []string {
	out := make([]string, 0, len(p.segments))
	for _, s := range p.segments {
		if s != Sentinel {
			out = append(out, s)
		}
	}
	return out
}

// Depth is the number of visible segments.
func (p Path) Depth() int {
	n := 0
	for _, s := range p.segments {
		if s != Sentinel {
			n++
		}
	}
	return n
}

// Current is the deepest visible segment, or "" at root.
func (p Path) Current() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Clone returns an independent copy.
func (p Path) Clone() Path {
	return New(p.segments...)
}

// Equal compares visible segments.
func (p Path) Equal(other Path) bool {
	a, b := p.Segments(), other.Segments()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Local joins the path below a filesystem root.
func (p Path) Local(root string) string {
	return filepath.Join(append([]string{root}, p.Segments()...)...)
}

// Remote joins the path below a slash separated remote root.
func (p Path) Remote(root string) string {
	joined := path.Join(append([]string{root}, p.Segments()...)...)
	if joined == "." {
		return ""
	}
	return joined
}

// Child returns a copy of p with segment appended.
func (p Path) Child(segment string) (Path, bool) {
	c := p.Clone()
	ok := c.Push(segment)
	return c, ok
}

// String renders the visible segments separated by " / ".
func (p Path) String() string {
	return strings.Join(p.Segments(), " / ")
}
