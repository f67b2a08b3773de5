// Package presenter turns dashboard state into the screen the user sees: a
// title, a notice, and a grid of activatable controls.
package presenter

import (
	"strconv"

	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/grid"
)

// Activatable is a focusable grid entry. Activating it yields the event it
// was bound to when the grid was built.
type Activatable interface {
	grid.Cell
	Label() string
	Activate() dashboard.Event
}

// Kind selects the icon and styling of a control.
type Kind int

const (
	KindNav Kind = iota
	KindEntryPoint
	KindCamera
	KindFolder
	KindAggregate
	KindLeaf
	KindPlayback
)

// Control is the value object behind every grid entry.
type Control struct {
	id       string
	label    string
	kind     Kind
	leafKind content.LeafKind
	event    dashboard.Event
}

func newControl(id, label string, kind Kind, ev dashboard.Event) Control {
	return Control{id: id, label: label, kind: kind, event: ev}
}

func (c Control) ID() string                { return c.id }
func (c Control) Label() string             { return c.label }
func (c Control) Activate() dashboard.Event { return c.event }
func (c Control) Kind() Kind                { return c.kind }

// LeafKind is set for KindLeaf controls.
func (c Control) LeafKind() content.LeafKind { return c.leafKind }

var _ Activatable = Control{}

// Control IDs that callers focus by name.
const (
	IDOpenPhotos     = "open:photos"
	IDOpenClips      = "open:clips"
	IDBackToCameras  = "nav:cameras"
	IDBack           = "nav:back"
	IDTopLevel       = "nav:top"
	IDAggregate      = "leaves"
	IDSlidePrev      = "slide:prev"
	IDSlideToggle    = "slide:toggle"
	IDSlideNext      = "slide:next"
	IDSlideBack      = "slide:back"
	IDFullscreenBack = "fullscreen:back"
	IDVideoBack      = "video:back"
	IDVideoPause     = "video:pause"
)

// FolderID is the control id of a subfolder entry.
func FolderID(name string) string { return "folder:" + name }

// LeafID is the control id of a leaf entry.
func LeafID(locator string) string { return "leaf:" + locator }

// CameraID is the control id of camera index i.
func CameraID(i int) string { return "camera:" + strconv.Itoa(i+1) }

func crumbID(depth int) string { return "nav:crumb:" + strconv.Itoa(depth) }
