package dashboard

import (
	"errors"
	"time"

	"github.com/camdash/camdash/internal/breadcrumb"
	"github.com/camdash/camdash/internal/camera"
	"github.com/camdash/camdash/internal/content"
)

var (
	// ErrIllegalTransition is returned for an event the current mode does not accept.
	ErrIllegalTransition = errors.New("illegal transition")
	// ErrStale is returned for a timer tick or async result that no longer
	// matches the current state. Callers drop it.
	ErrStale = errors.New("stale event")
	// ErrUnknownEntry is returned when a locator is not in the current listing.
	ErrUnknownEntry = errors.New("entry not in current listing")
	// ErrUnavailable is returned when opening a viewer that is not configured.
	ErrUnavailable = errors.New("viewer not configured")
)

const maxClipRestarts = 3

// Lister lists a local folder below the photo root.
type Lister interface {
	List(p breadcrumb.Path) (content.Listing, error)
}

// Options configures a Machine.
type Options struct {
	Cameras []camera.Source
	// Photos is nil when no local archive is configured.
	Photos Lister
	// RemoteEnabled gates OpenRemoteViewer.
	RemoteEnabled     bool
	RemoteRoot        string
	SlideshowInterval time.Duration
	StreamRetryDelay  time.Duration
	StreamMaxRetries  int
}

// Notice is a message shown on the current screen.
type Notice struct {
	Text  string
	Error bool
}

type slideshow struct {
	items  []content.Entry
	index  int
	origin Origin
}

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingList
	pendingDownload
)

// pending is the one async request whose result will be applied.
type pending struct {
	id      int
	kind    pendingKind
	root    bool
	name    string
	locator string
}

// Machine is the state container of the dashboard. It is not safe for
// concurrent use; the UI event loop owns it.
type Machine struct {
	opts Options

	mode   Mode
	crumbs breadcrumb.Path

	// listing is the current local folder.
	listing content.Listing

	// remote holds one listing per remote depth, root first.
	remote      []content.Listing
	remoteLevel RemoteLevel
	filesOrigin Origin

	show slideshow

	camera    int
	clip      string
	clipLocal string

	timerGen  int
	streamGen int
	attempts  int
	requestID int
	pending   pending

	notice   Notice
	lastLeft string
}

// New creates a machine on the camera grid.
func New(opts Options) *Machine {
	if opts.SlideshowInterval <= 0 {
		opts.SlideshowInterval = 3 * time.Second
	}
	if opts.StreamRetryDelay <= 0 {
		opts.StreamRetryDelay = 5 * time.Second
	}
	if opts.StreamMaxRetries <= 0 {
		opts.StreamMaxRetries = 1000
	}
	return &Machine{opts: opts, mode: ModeCamera}
}

func (m *Machine) Mode() Mode { return m.mode }

// Breadcrumbs returns a copy of the current path.
func (m *Machine) Breadcrumbs() breadcrumb.Path { return m.crumbs.Clone() }

func (m *Machine) Cameras() []camera.Source { return m.opts.Cameras }

// Camera returns the full screen camera.
func (m *Machine) Camera() (camera.Source, bool) {
	if m.mode != ModeCameraFullscreen {
		return camera.Source{}, false
	}
	return m.opts.Cameras[m.camera], true
}

// PhotosEnabled reports whether OpenPhotoViewer is available.
func (m *Machine) PhotosEnabled() bool { return m.opts.Photos != nil }

// RemoteEnabled reports whether OpenRemoteViewer is available.
func (m *Machine) RemoteEnabled() bool { return m.opts.RemoteEnabled }

// Listing returns the folder shown by the active folder mode.
func (m *Machine) Listing() content.Listing {
	switch m.mode {
	case ModePhotoFolder, ModeSlideshow, ModePlay:
		return m.listing
	case ModeRemoteFolder, ModeRemoteVideo:
		if len(m.remote) == 0 {
			return content.Listing{}
		}
		return m.remote[len(m.remote)-1]
	default:
		return content.Listing{}
	}
}

func (m *Machine) RemoteLevel() RemoteLevel { return m.remoteLevel }

// Slideshow returns the leaves being shown and the current index.
func (m *Machine) Slideshow() ([]content.Entry, int) {
	return m.show.items, m.show.index
}

// Current returns the slideshow item on screen.
func (m *Machine) Current() (content.Entry, bool) {
	if !m.mode.IsSlideshow() || len(m.show.items) == 0 {
		return content.Entry{}, false
	}
	return m.show.items[m.show.index], true
}

// Clip returns the remote locator and local file of the playing clip.
func (m *Machine) Clip() (locator, localPath string) {
	return m.clip, m.clipLocal
}

// Loading reports an async request in flight.
func (m *Machine) Loading() bool { return m.pending.kind != pendingNone }

func (m *Machine) Notice() Notice { return m.notice }

// LastLeft is the name of the folder the last LeaveFolder or JumpTo came out
// of, or "".
func (m *Machine) LastLeft() string { return m.lastLeft }

// TimerGeneration is the generation a valid Tick must carry.
func (m *Machine) TimerGeneration() int { return m.timerGen }

func (m *Machine) StreamAttempts() int { return m.attempts }

// StreamGeneration identifies the current renderer session.
func (m *Machine) StreamGeneration() int { return m.streamGen }

// reset clears everything that belongs to a mode other than Camera.
func (m *Machine) reset() {
	m.timerGen++
	m.streamGen++
	m.attempts = 0
	m.pending = pending{}
	m.crumbs.Clear()
	m.listing = content.Listing{}
	m.remote = nil
	m.remoteLevel = RemoteFolders
	m.filesOrigin = OriginDirect
	m.show = slideshow{}
	m.clip, m.clipLocal = "", ""
	m.notice = Notice{}
	m.lastLeft = ""
}

func (m *Machine) setError(text string) {
	m.notice = Notice{Text: text, Error: true}
}

func (m *Machine) setInfo(text string) {
	m.notice = Notice{Text: text}
}

type exhaustedError struct{ last error }

func (e exhaustedError) Error() string {
	if e.last == nil {
		return "stream ended, giving up"
	}
	return "giving up after repeated failures: " + e.last.Error()
}

func (e exhaustedError) Unwrap() error { return e.last }

func errStreamExhausted(last error) error { return exhaustedError{last: last} }
