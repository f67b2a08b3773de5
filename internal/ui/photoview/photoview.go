// Package photoview renders slideshow photos in the terminal using Kitty,
// Sixel or half block output.
package photoview

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Prepared is a photo decoded and scaled for one display area.
type Prepared struct {
	Path   string
	Width  int // cells
	Height int // cells
	PNG    []byte
}

// Load decodes path honouring EXIF orientation and scales it to fit a
// width x height cell area. It does no terminal output and is meant to run
// inside a tea.Cmd.
func Load(proto ImageProtocol, cache *Cache, path string, width, height int) (*Prepared, error) {
	if proto == nil {
		return nil, fmt.Errorf("no image protocol")
	}
	pw, ph := proto.TargetPixelSize(width, height)
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("display area %dx%d too small", width, height)
	}

	if data := cache.Get(path, pw, ph); data != nil {
		return &Prepared{Path: path, Width: width, Height: height, PNG: data}, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	//nolint:gosec // dimensions are terminal sized
	scaled := resize.Thumbnail(uint(pw), uint(ph), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	_ = cache.Put(path, pw, ph, buf.Bytes()) //nolint:errcheck // cache is best-effort

	return &Prepared{Path: path, Width: width, Height: height, PNG: buf.Bytes()}, nil
}

// Renderer owns the photo currently on screen.
type Renderer struct {
	mu sync.RWMutex

	proto  ImageProtocol
	path   string
	id     uint32
	width  int
	height int
}

func New(proto ImageProtocol) *Renderer {
	return &Renderer{proto: proto}
}

// Enabled reports whether a protocol is available.
func (r *Renderer) Enabled() bool {
	return r != nil && r.proto != nil
}

func (r *Renderer) Protocol() ImageProtocol {
	return r.proto
}

// Apply makes p the displayed photo. It returns the terminal command to
// write once (old image deletion plus transmission), possibly empty.
func (r *Renderer) Apply(p *Prepared) (string, error) {
	if !r.Enabled() || p == nil {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleteCmd string
	if r.id > 0 {
		deleteCmd = r.proto.Delete(r.id)
	}

	id := getNextImageID()
	transmit, err := r.proto.PrepareFromPNG(p.PNG, id)
	if err != nil {
		r.path, r.id = "", 0
		return deleteCmd, err
	}

	r.path = p.Path
	r.id = id
	r.width = p.Width
	r.height = p.Height
	return deleteCmd + transmit, nil
}

// Current is the path of the displayed photo.
func (r *Renderer) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.path
}

// Matches reports whether path is displayed at the given size.
func (r *Renderer) Matches(path string, width, height int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id > 0 && r.path == path && r.width == width && r.height == height
}

// Inline returns the layout content for the photo area.
func (r *Renderer) Inline(width, height int) string {
	if !r.Enabled() {
		return BlankPlaceholder(width, height)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.id == 0 {
		return BlankPlaceholder(width, height)
	}
	return r.proto.Inline(r.id, width, height)
}

// Placement returns the escape sequence drawing the photo at the 1-based
// (row, col) cell, to be appended after the frame.
func (r *Renderer) Placement(row, col int) string {
	if !r.Enabled() {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.id == 0 {
		return ""
	}
	return r.proto.Place(r.id, row, col, r.width, r.height)
}

// Clear forgets the displayed photo and returns the command removing it.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.id > 0 {
		cmd = r.proto.Delete(r.id)
	}
	r.path, r.id, r.width, r.height = "", 0, 0, 0
	return cmd
}
