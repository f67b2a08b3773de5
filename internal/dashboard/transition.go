package dashboard

import (
	"fmt"
	"path"

	"github.com/camdash/camdash/internal/breadcrumb"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/errmsg"
)

// Transition applies ev and returns the effects the caller must run.
// An error leaves the state unchanged. Content source failures are not
// errors: they set a Notice and keep the current screen.
func (m *Machine) Transition(ev Event) ([]Effect, error) {
	switch e := ev.(type) {
	case OpenPhotoViewer:
		return m.openPhotoViewer(ev)
	case OpenRemoteViewer:
		return m.openRemoteViewer(ev)
	case OpenCamera:
		return m.openCamera(ev, e.Index)
	case CloseToGrid:
		return m.closeToGrid(), nil
	case EnterFolder:
		return m.enterFolder(ev, e.Locator)
	case LeaveFolder:
		return m.leaveFolder(ev)
	case EnterLeafContent:
		return m.enterLeaf(ev, e.Locator)
	case ShowLeaves:
		return m.showLeaves(ev)
	case JumpTo:
		return m.jumpTo(ev, e.Depth)
	case TogglePlay:
		return m.togglePlay(ev)
	case Next:
		if !m.mode.IsSlideshow() {
			return nil, m.illegal(ev)
		}
		return m.advance(false), nil
	case Previous:
		return m.previous(ev)
	case Tick:
		if m.mode != ModePlay || e.Generation != m.timerGen {
			return nil, ErrStale
		}
		return m.advance(true), nil
	case StreamEnded:
		return m.streamEnded(e)
	case RetryStream:
		return m.retryStream(e.Generation)
	case RemoteListed:
		return m.remoteListed(e)
	case Downloaded:
		return m.downloaded(e)
	}
	return nil, fmt.Errorf("%w: unknown event %T", ErrIllegalTransition, ev)
}

func (m *Machine) illegal(ev Event) error {
	return fmt.Errorf("%w: %T in %s", ErrIllegalTransition, ev, m.mode)
}

func (m *Machine) openPhotoViewer(ev Event) ([]Effect, error) {
	if m.mode != ModeCamera {
		return nil, m.illegal(ev)
	}
	if m.opts.Photos == nil {
		return nil, ErrUnavailable
	}
	m.reset()
	m.mode = ModePhotoFolder
	m.loadLocal(breadcrumb.Path{})
	return nil, nil
}

func (m *Machine) openRemoteViewer(ev Event) ([]Effect, error) {
	if m.mode != ModeCamera {
		return nil, m.illegal(ev)
	}
	if !m.opts.RemoteEnabled {
		return nil, ErrUnavailable
	}
	m.reset()
	m.mode = ModeRemoteFolder
	return []Effect{m.requestList(pending{root: true}, m.opts.RemoteRoot)}, nil
}

func (m *Machine) openCamera(ev Event, index int) ([]Effect, error) {
	if m.mode != ModeCamera {
		return nil, m.illegal(ev)
	}
	if index < 0 || index >= len(m.opts.Cameras) {
		return nil, fmt.Errorf("%w: no camera %d", ErrIllegalTransition, index+1)
	}
	m.reset()
	m.mode = ModeCameraFullscreen
	m.camera = index
	return []Effect{PlayURI{URI: m.opts.Cameras[index].URI, Live: true, Generation: m.streamGen}}, nil
}

func (m *Machine) closeToGrid() []Effect {
	var effects []Effect
	if m.mode.IsPlayback() {
		effects = append(effects, StopPlayback{})
	}
	m.reset()
	m.mode = ModeCamera
	return effects
}

// loadLocal lists p and commits it as the current folder on success. On
// failure the breadcrumb and listing are left as they were.
func (m *Machine) loadLocal(p breadcrumb.Path) (content.Listing, bool) {
	listing, err := m.opts.Photos.List(p)
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpListFolder, err))
		return content.Listing{}, false
	}
	m.crumbs = p
	m.listing = listing
	m.notice = Notice{}
	return listing, true
}

func findEntry(entries []content.Entry, locator string) (int, bool) {
	for i, e := range entries {
		if e.Locator == locator {
			return i, true
		}
	}
	return -1, false
}

func (m *Machine) enterFolder(ev Event, locator string) ([]Effect, error) {
	switch {
	case m.mode == ModePhotoFolder:
		i, ok := findEntry(m.listing.Folders, locator)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, locator)
		}
		child, ok := m.crumbs.Child(m.listing.Folders[i].Name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, locator)
		}
		listing, ok := m.loadLocal(child)
		if !ok {
			return nil, nil
		}
		m.lastLeft = ""
		if listing.LeavesOnly() {
			m.startSlideshow(listing.Leaves, 0, OriginDirect)
		}
		return nil, nil

	case m.mode == ModeRemoteFolder && m.remoteLevel == RemoteFolders:
		folders := m.Listing().Folders
		i, ok := findEntry(folders, locator)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, locator)
		}
		return []Effect{m.requestList(pending{name: folders[i].Name}, locator)}, nil
	}
	return nil, m.illegal(ev)
}

func (m *Machine) startSlideshow(items []content.Entry, index int, origin Origin) {
	m.timerGen++
	m.mode = ModeSlideshow
	m.show = slideshow{items: items, index: index, origin: origin}
}

// leaveFolder undoes one level. Leaving a slideshow stops the timer before the
// mode changes.
func (m *Machine) leaveFolder(ev Event) ([]Effect, error) {
	switch m.mode {
	case ModeCameraFullscreen:
		return m.closeToGrid(), nil

	case ModePhotoFolder:
		if m.crumbs.IsAtRoot() {
			return m.closeToGrid(), nil
		}
		m.popLocal()
		return nil, nil

	case ModeSlideshow, ModePlay:
		m.timerGen++
		origin := m.show.origin
		m.show = slideshow{}
		m.mode = ModePhotoFolder
		if origin == OriginDirect && !m.crumbs.IsAtRoot() {
			m.popLocal()
		} else {
			m.reloadLocal()
		}
		return nil, nil

	case ModeRemoteFolder:
		m.pending = pending{}
		if m.remoteLevel == RemoteFiles && m.filesOrigin == OriginAggregate {
			m.remoteLevel = RemoteFolders
			return nil, nil
		}
		if m.crumbs.IsAtRoot() {
			return m.closeToGrid(), nil
		}
		m.popRemote()
		return nil, nil

	case ModeRemoteVideo:
		m.streamGen++
		m.attempts = 0
		m.clip, m.clipLocal = "", ""
		m.mode = ModeRemoteFolder
		m.remoteLevel = RemoteFiles
		return []Effect{StopPlayback{}}, nil
	}
	return nil, m.illegal(ev)
}

// popLocal moves to the parent folder. The pop is kept even when the parent
// cannot be listed so that a deleted folder never traps the user; the failure
// is shown as a notice over an empty listing.
func (m *Machine) popLocal() {
	parent := m.crumbs.Clone()
	left, _ := parent.Pop()
	if _, ok := m.loadLocal(parent); !ok {
		m.crumbs = parent
		m.listing = content.Listing{}
	}
	m.lastLeft = left
}

// reloadLocal lists the current folder again after a slideshow.
func (m *Machine) reloadLocal() {
	if _, ok := m.loadLocal(m.crumbs.Clone()); !ok {
		m.listing = content.Listing{}
	}
	m.lastLeft = ""
}

func (m *Machine) popRemote() {
	left, _ := m.crumbs.Pop()
	if len(m.remote) > 1 {
		m.remote = m.remote[:len(m.remote)-1]
	}
	m.remoteLevel = RemoteFolders
	m.lastLeft = left
	m.notice = Notice{}
}

func (m *Machine) showLeaves(ev Event) ([]Effect, error) {
	switch {
	case m.mode == ModePhotoFolder && len(m.listing.Leaves) > 0:
		m.startSlideshow(m.listing.Leaves, 0, OriginAggregate)
		return nil, nil
	case m.mode == ModeRemoteFolder && m.remoteLevel == RemoteFolders && len(m.Listing().Leaves) > 0:
		m.pending = pending{}
		m.remoteLevel = RemoteFiles
		m.filesOrigin = OriginAggregate
		m.notice = Notice{}
		return nil, nil
	}
	return nil, m.illegal(ev)
}

func (m *Machine) enterLeaf(ev Event, locator string) ([]Effect, error) {
	switch {
	case m.mode == ModePhotoFolder:
		i, ok := findEntry(m.listing.Leaves, locator)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, locator)
		}
		m.startSlideshow(m.listing.Leaves, i, OriginAggregate)
		return nil, nil

	case m.mode == ModeRemoteFolder && m.remoteLevel == RemoteFiles:
		leaves := m.Listing().Leaves
		i, ok := findEntry(leaves, locator)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, locator)
		}
		if leaves[i].LeafKind != content.Video {
			m.setInfo("Selected file: " + leaves[i].Name)
			return nil, nil
		}
		m.requestID++
		m.pending = pending{id: m.requestID, kind: pendingDownload, locator: locator}
		m.notice = Notice{}
		return []Effect{DownloadRemote{RequestID: m.requestID, Locator: locator}}, nil
	}
	return nil, m.illegal(ev)
}

func (m *Machine) jumpTo(ev Event, depth int) ([]Effect, error) {
	if !m.mode.IsFolder() || depth < 0 || depth >= m.crumbs.Depth() {
		return nil, m.illegal(ev)
	}
	left := m.crumbs.Segments()[depth]

	if m.mode == ModePhotoFolder {
		target := m.crumbs.Clone()
		target.Truncate(depth)
		if _, ok := m.loadLocal(target); !ok {
			return nil, nil
		}
		m.lastLeft = left
		return nil, nil
	}

	m.pending = pending{}
	m.crumbs.Truncate(depth)
	if len(m.remote) > depth+1 {
		m.remote = m.remote[:depth+1]
	}
	m.remoteLevel = RemoteFolders
	m.lastLeft = left
	m.notice = Notice{}
	return nil, nil
}

func (m *Machine) requestList(p pending, remotePath string) Effect {
	m.requestID++
	p.id = m.requestID
	p.kind = pendingList
	m.pending = p
	return ListRemote{RequestID: p.id, Path: remotePath}
}

// remoteListed applies a listing result. The breadcrumb is pushed only now,
// so a failed listing leaves the user where they were.
func (m *Machine) remoteListed(e RemoteListed) ([]Effect, error) {
	if m.mode != ModeRemoteFolder || m.pending.kind != pendingList || m.pending.id != e.RequestID {
		return nil, ErrStale
	}
	req := m.pending
	m.pending = pending{}

	if e.Err != nil {
		m.setError(errmsg.Format(errmsg.OpListRemote, e.Err))
		return nil, nil
	}

	listing := content.Split(e.Entries)
	m.notice = Notice{}
	m.lastLeft = ""
	if req.root {
		m.crumbs.Clear()
		m.remote = []content.Listing{listing}
		m.remoteLevel = RemoteFolders
		return nil, nil
	}

	m.crumbs.Push(req.name)
	m.remote = append(m.remote, listing)
	m.remoteLevel = RemoteFolders
	if listing.LeavesOnly() {
		m.remoteLevel = RemoteFiles
		m.filesOrigin = OriginDirect
	}
	return nil, nil
}

func (m *Machine) downloaded(e Downloaded) ([]Effect, error) {
	if m.mode != ModeRemoteFolder || m.pending.kind != pendingDownload || m.pending.id != e.RequestID {
		return nil, ErrStale
	}
	m.pending = pending{}

	if e.Err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpDownload, path.Base(e.Locator), e.Err))
		return nil, nil
	}

	m.mode = ModeRemoteVideo
	m.clip, m.clipLocal = e.Locator, e.LocalPath
	m.streamGen++
	m.attempts = 0
	m.notice = Notice{}
	return []Effect{PlayURI{URI: e.LocalPath, Generation: m.streamGen}}, nil
}
