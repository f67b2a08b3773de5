package presenter

import (
	"fmt"
	"sort"

	"github.com/camdash/camdash/internal/archive"
	"github.com/camdash/camdash/internal/breadcrumb"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/grid"
)

// Options are layout settings.
type Options struct {
	PhotoColumns  int
	RemoteColumns int
}

// Screen is everything a view needs to draw the current mode.
type Screen struct {
	Mode   dashboard.Mode
	Title  string
	Crumbs []string
	Notice dashboard.Notice
	// Empty is set when the folder has nothing to show.
	Empty   string
	Loading bool
	Grid    *grid.Grid[Control]

	// Slideshow
	Image    string
	Position int
	Total    int
	Playing  bool
	Caption  string

	// Playback
	Subject string
}

// Present builds the screen for the machine's current state. The grid is
// built fresh and focus is anchored inside it.
func Present(m *dashboard.Machine, opts Options) Screen {
	if opts.PhotoColumns <= 0 {
		opts.PhotoColumns = 4
	}
	if opts.RemoteColumns <= 0 {
		opts.RemoteColumns = 4
	}

	s := Screen{
		Mode:    m.Mode(),
		Notice:  m.Notice(),
		Loading: m.Loading(),
	}

	switch m.Mode() {
	case dashboard.ModeCamera:
		presentCameras(m, &s)
	case dashboard.ModeCameraFullscreen:
		presentFullscreen(m, &s)
	case dashboard.ModePhotoFolder:
		presentFolder(m, &s, "Photos", "photos", opts.PhotoColumns, sortAlpha)
	case dashboard.ModeSlideshow, dashboard.ModePlay:
		presentSlideshow(m, &s)
	case dashboard.ModeRemoteFolder:
		if m.RemoteLevel() == dashboard.RemoteFiles {
			presentFiles(m, &s)
		} else {
			presentFolder(m, &s, "Motion clips", "clips", opts.RemoteColumns, archive.SortFoldersByDate)
		}
	case dashboard.ModeRemoteVideo:
		presentVideo(m, &s)
	}
	return s
}

func presentCameras(m *dashboard.Machine, s *Screen) {
	s.Title = "Cameras"

	var entry []Control
	if m.PhotosEnabled() {
		entry = append(entry, newControl(IDOpenPhotos, "Photo viewer", KindEntryPoint, dashboard.OpenPhotoViewer{}))
	}
	if m.RemoteEnabled() {
		entry = append(entry, newControl(IDOpenClips, "Motion clips", KindEntryPoint, dashboard.OpenRemoteViewer{}))
	}

	cams := m.Cameras()
	var primary, secondary []Control
	for i, c := range cams {
		ctl := newControl(CameraID(i), c.Label(i), KindCamera, dashboard.OpenCamera{Index: i})
		if i == 0 {
			primary = append(primary, ctl)
		} else {
			secondary = append(secondary, ctl)
		}
	}
	if len(cams) == 0 {
		s.Empty = "No cameras configured"
	}

	s.Grid = grid.Build(secondary, 2, entry, primary)
	s.Grid.Anchor(CameraID(0))
}

func presentFullscreen(m *dashboard.Machine, s *Screen) {
	cam, _ := m.Camera()
	s.Title = cam.Name
	s.Subject = cam.URI
	s.Grid = grid.Build([]Control{
		newControl(IDFullscreenBack, "Back to All Cameras", KindNav, dashboard.LeaveFolder{}),
	}, 1)
}

// navRow returns the breadcrumb controls. At root there are none.
func navRow(crumbs breadcrumb.Path) []Control {
	if crumbs.IsAtRoot() {
		return nil
	}
	row := []Control{
		newControl(IDBack, "Back", KindNav, dashboard.LeaveFolder{}),
		newControl(IDBackToCameras, "Cameras", KindNav, dashboard.CloseToGrid{}),
	}
	segs := crumbs.Segments()
	if len(segs) > 1 {
		row = append(row, newControl(IDTopLevel, "Top level", KindNav, dashboard.JumpTo{Depth: 0}))
		// Every ancestor except the current folder.
		for i, seg := range segs[:len(segs)-1] {
			row = append(row, newControl(crumbID(i+1), seg, KindNav, dashboard.JumpTo{Depth: i + 1}))
		}
	}
	return row
}

func sortAlpha(entries []content.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

func presentFolder(m *dashboard.Machine, s *Screen, title, noun string, columns int, order func([]content.Entry)) {
	crumbs := m.Breadcrumbs()
	listing := m.Listing()
	s.Title = title
	s.Crumbs = crumbs.Segments()

	var aggregate []Control
	if n := len(listing.Leaves); n > 0 {
		aggregate = append(aggregate, newControl(IDAggregate,
			fmt.Sprintf("%d %s in this folder", n, noun), KindAggregate, dashboard.ShowLeaves{}))
	}

	folders := append([]content.Entry(nil), listing.Folders...)
	order(folders)
	cells := make([]Control, len(folders))
	for i, f := range folders {
		cells[i] = newControl(FolderID(f.Name), f.Name, KindFolder, dashboard.EnterFolder{Locator: f.Locator})
	}

	// A listing that failed is empty too, but the notice already says why.
	if listing.IsEmpty() && !s.Loading && !s.Notice.Error {
		s.Empty = "This folder is empty"
	}

	s.Grid = grid.Build(cells, columns, navRow(crumbs), aggregate)
	var preferred []string
	if left := m.LastLeft(); left != "" {
		preferred = append(preferred, FolderID(left))
	}
	preferred = append(preferred, IDAggregate)
	if len(cells) > 0 {
		preferred = append(preferred, cells[0].ID())
	}
	s.Grid.Anchor(preferred...)
}

func presentSlideshow(m *dashboard.Machine, s *Screen) {
	items, index := m.Slideshow()
	crumbs := m.Breadcrumbs()
	s.Title = "Photos"
	s.Crumbs = crumbs.Segments()
	s.Total = len(items)
	s.Position = index
	s.Playing = m.Mode() == dashboard.ModePlay
	if cur, ok := m.Current(); ok {
		s.Image = cur.Locator
		s.Caption = fmt.Sprintf("%d / %d  %s", index+1, len(items), cur.Name)
	}

	toggle := "Play"
	if s.Playing {
		toggle = "Pause"
	}
	s.Grid = grid.Build([]Control{
		newControl(IDSlidePrev, "Previous", KindPlayback, dashboard.Previous{}),
		newControl(IDSlideToggle, toggle, KindPlayback, dashboard.TogglePlay{}),
		newControl(IDSlideNext, "Next", KindPlayback, dashboard.Next{}),
		newControl(IDSlideBack, "Back", KindNav, dashboard.LeaveFolder{}),
	}, 4)
	s.Grid.Anchor(IDSlideNext)
}

func presentFiles(m *dashboard.Machine, s *Screen) {
	crumbs := m.Breadcrumbs()
	s.Title = "Motion clips"
	s.Crumbs = crumbs.Segments()

	leaves := append([]content.Entry(nil), m.Listing().Leaves...)
	archive.SortClipsByTime(leaves)
	cells := make([]Control, len(leaves))
	for i, l := range leaves {
		label := l.Name
		if l.LeafKind == content.Video {
			label = archive.ClipLabel(l.Name)
		}
		c := newControl(LeafID(l.Locator), label, KindLeaf, dashboard.EnterLeafContent{Locator: l.Locator})
		c.leafKind = l.LeafKind
		cells[i] = c
	}

	nav := navRow(crumbs)
	if len(nav) == 0 {
		nav = []Control{newControl(IDBack, "Back", KindNav, dashboard.LeaveFolder{})}
	}
	if len(cells) == 0 {
		s.Empty = "No clips in this folder"
	}
	s.Grid = grid.Build(cells, 1, nav)
	if len(cells) > 0 {
		s.Grid.Anchor(cells[0].ID())
	}
}

func presentVideo(m *dashboard.Machine, s *Screen) {
	locator, local := m.Clip()
	name := archive.Base(locator)
	s.Title = archive.ClipLabel(name)
	s.Crumbs = m.Breadcrumbs().Segments()
	s.Subject = local
	s.Grid = grid.Build([]Control{
		newControl(IDVideoBack, "Back to clips", KindNav, dashboard.LeaveFolder{}),
		newControl(IDVideoPause, "Pause / resume", KindPlayback, dashboard.TogglePlay{}),
	}, 2)
}
