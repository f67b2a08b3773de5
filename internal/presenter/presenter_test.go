package presenter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdash/camdash/internal/camera"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
)

func labels(rows [][]Control) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		for _, c := range row {
			out[i] = append(out[i], c.Label())
		}
	}
	return out
}

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}
}

func photoMachine(t *testing.T, root string) *dashboard.Machine {
	t.Helper()
	src, err := content.NewLocalSource(root)
	require.NoError(t, err)
	m := dashboard.New(dashboard.Options{Photos: src})
	_, err = m.Transition(dashboard.OpenPhotoViewer{})
	require.NoError(t, err)
	return m
}

func activate(t *testing.T, m *dashboard.Machine, s Screen, id string) Screen {
	t.Helper()
	c, ok := s.Grid.Find(id)
	require.True(t, ok, "control %q not in grid", id)
	_, err := m.Transition(c.Activate())
	require.NoError(t, err)
	return Present(m, Options{})
}

func TestCameraScreen(t *testing.T) {
	var cams []camera.Source
	for _, n := range []string{"door", "yard", "garage", "drive", "side"} {
		cams = append(cams, camera.Source{Name: n, URI: "rtsp://" + n})
	}
	m := dashboard.New(dashboard.Options{Cameras: cams, Photos: nil, RemoteEnabled: true})

	s := Present(m, Options{})
	assert.Equal(t, [][]string{
		{"Motion clips"},
		{"door"},
		{"yard", "garage"},
		{"drive", "side"},
	}, labels(s.Grid.Rows()))
	assert.Equal(t, CameraID(0), s.Grid.FocusedID())

	var ids []string
	for _, c := range s.Grid.Cells() {
		if c.Kind() == KindCamera {
			ids = append(ids, c.ID())
		}
	}
	assert.Equal(t, []string{"camera:1", "camera:2", "camera:3", "camera:4", "camera:5"}, ids)

	s = activate(t, m, s, CameraID(2))
	assert.Equal(t, dashboard.ModeCameraFullscreen, s.Mode)
	assert.Equal(t, "garage", s.Title)
	assert.Equal(t, "rtsp://garage", s.Subject)
	focused, ok := s.Grid.Focused()
	require.True(t, ok)
	assert.Equal(t, "Back to All Cameras", focused.Label())
}

func TestCameraScreen_NoCameras(t *testing.T) {
	s := Present(dashboard.New(dashboard.Options{}), Options{})
	assert.Equal(t, "No cameras configured", s.Empty)
	assert.Equal(t, 0, s.Grid.Len())
}

func TestFolderScreen_AggregateAndSubfolder(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "B/1.jpg", "B/2.jpg", "B/C/3.jpg")
	m := photoMachine(t, root)

	s := Present(m, Options{})
	assert.Empty(t, s.Crumbs)
	s = activate(t, m, s, FolderID("B"))

	assert.Equal(t, dashboard.ModePhotoFolder, s.Mode)
	assert.Equal(t, []string{"B"}, s.Crumbs)
	assert.Equal(t, [][]string{
		{"Back", "Cameras"},
		{"2 photos in this folder"},
		{"C"},
	}, labels(s.Grid.Rows()))
	assert.Equal(t, IDAggregate, s.Grid.FocusedID())

	s = activate(t, m, s, IDAggregate)
	assert.Equal(t, dashboard.ModeSlideshow, s.Mode)
	assert.Equal(t, 0, s.Position)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, filepath.Join(root, "B", "1.jpg"), s.Image)
	assert.Equal(t, "1 / 2  1.jpg", s.Caption)
}

func TestFolderScreen_RootHasNoNavRow(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b/1.jpg", "a/2.jpg", "c/3.jpg", "d/4.jpg", "e/5.jpg")
	m := photoMachine(t, root)

	s := Present(m, Options{PhotoColumns: 3})
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"d", "e"},
	}, labels(s.Grid.Rows()))
	assert.Equal(t, FolderID("a"), s.Grid.FocusedID())
}

func TestFolderScreen_BreadcrumbControls(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "x/y/z/1.jpg", "x/y/z/w/2.jpg")
	m := photoMachine(t, root)

	s := Present(m, Options{})
	s = activate(t, m, s, FolderID("x"))
	assert.Equal(t, []string{"Back", "Cameras"}, labels(s.Grid.Rows())[0])
	s = activate(t, m, s, FolderID("y"))
	s = activate(t, m, s, FolderID("z"))

	assert.Equal(t, []string{"x", "y", "z"}, s.Crumbs)
	assert.Equal(t, []string{"Back", "Cameras", "Top level", "x", "y"}, labels(s.Grid.Rows())[0])

	// Intermediate segment jumps to that depth and focuses the folder left.
	s = activate(t, m, s, crumbID(1))
	assert.Equal(t, []string{"x"}, s.Crumbs)
	assert.Equal(t, FolderID("y"), s.Grid.FocusedID())

	s = activate(t, m, s, IDBackToCameras)
	assert.Equal(t, dashboard.ModeCamera, s.Mode)
}

func TestFolderScreen_FocusReturnsToFolderLeft(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/1.jpg", "b/2.jpg", "c/3.jpg")
	m := photoMachine(t, root)
	s := Present(m, Options{})

	s = activate(t, m, s, FolderID("b"))
	assert.Equal(t, dashboard.ModeSlideshow, s.Mode)
	s = activate(t, m, s, IDSlideBack)

	assert.Equal(t, dashboard.ModePhotoFolder, s.Mode)
	assert.Equal(t, FolderID("b"), s.Grid.FocusedID())
}

func TestFolderScreen_Empty(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))
	m := photoMachine(t, root)

	s := activate(t, m, Present(m, Options{}), FolderID("empty"))
	assert.Equal(t, "This folder is empty", s.Empty)
	assert.Equal(t, [][]string{{"Back", "Cameras"}}, labels(s.Grid.Rows()))
	assert.Equal(t, IDBack, s.Grid.FocusedID())
}

func TestFolderScreen_UnreadableFolderIsNotEmpty(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "A/x/1.jpg", "A/x/2.jpg")
	m := photoMachine(t, root)
	s := activate(t, m, Present(m, Options{}), FolderID("A"))
	s = activate(t, m, s, FolderID("x"))
	require.Equal(t, dashboard.ModeSlideshow, m.Mode())

	require.NoError(t, os.RemoveAll(filepath.Join(root, "A")))
	activate(t, m, s, IDSlideBack)

	s = Present(m, Options{})
	assert.Equal(t, dashboard.ModePhotoFolder, s.Mode)
	assert.True(t, s.Notice.Error)
	assert.Contains(t, s.Notice.Text, "Failed to open folder")
	assert.Empty(t, s.Empty)
}

func TestBuildIsIdempotent(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "m/1.jpg", "m/a/2.jpg", "m/b/3.jpg", "m/c/4.jpg", "m/d/5.jpg", "m/e/6.jpg")
	m := photoMachine(t, root)
	activate(t, m, Present(m, Options{}), FolderID("m"))

	a := Present(m, Options{PhotoColumns: 2})
	b := Present(m, Options{PhotoColumns: 2})
	assert.Equal(t, a.Grid.Rows(), b.Grid.Rows())
	assert.Equal(t, a.Grid.FocusedID(), b.Grid.FocusedID())
}

func TestSlideshowControls(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a/1.jpg", "a/2.jpg")
	m := photoMachine(t, root)
	s := activate(t, m, Present(m, Options{}), FolderID("a"))

	assert.Equal(t, [][]string{{"Previous", "Play", "Next", "Back"}}, labels(s.Grid.Rows()))
	assert.Equal(t, IDSlideNext, s.Grid.FocusedID())

	s = activate(t, m, s, IDSlideToggle)
	assert.True(t, s.Playing)
	assert.Equal(t, dashboard.ModePlay, s.Mode)
	toggle, _ := s.Grid.Find(IDSlideToggle)
	assert.Equal(t, "Pause", toggle.Label())

	s = activate(t, m, s, IDSlidePrev)
	assert.Equal(t, 1, s.Position)
}

func remoteMachine(t *testing.T, root ...content.Entry) *dashboard.Machine {
	t.Helper()
	m := dashboard.New(dashboard.Options{RemoteEnabled: true, RemoteRoot: "/motion_images"})
	effects, err := m.Transition(dashboard.OpenRemoteViewer{})
	require.NoError(t, err)
	req := effects[0].(dashboard.ListRemote)
	_, err = m.Transition(dashboard.RemoteListed{RequestID: req.RequestID, Entries: root})
	require.NoError(t, err)
	return m
}

func TestRemoteFolders_SortedByDateDescending(t *testing.T) {
	m := remoteMachine(t,
		content.NewFolder("2025-07-15", "/motion_images/2025-07-15"),
		content.NewFolder("misc", "/motion_images/misc"),
		content.NewFolder("2025-08-01", "/motion_images/2025-08-01"),
	)

	s := Present(m, Options{RemoteColumns: 4})
	assert.Equal(t, "Motion clips", s.Title)
	assert.Equal(t, []string{"2025-08-01", "2025-07-15", "misc"}, labels(s.Grid.Rows())[0])
	assert.Equal(t, FolderID("2025-08-01"), s.Grid.FocusedID())
}

func TestRemoteFiles_LabelsAndOrder(t *testing.T) {
	m := remoteMachine(t,
		content.NewLeaf("20250801T015438-frontdoor.mp4", "/motion_images/20250801t015438-frontdoor.mp4"),
		content.NewLeaf("20250801T120000-yard.mp4", "/motion_images/20250801t120000-yard.mp4"),
		content.NewLeaf("readme.txt", "/motion_images/readme.txt"),
	)
	s := Present(m, Options{})
	assert.Equal(t, [][]string{{"3 clips in this folder"}}, labels(s.Grid.Rows()))

	s = activate(t, m, s, IDAggregate)
	assert.Equal(t, [][]string{
		{"Back"},
		{"yard at 12:00:00"},
		{"frontdoor at 01:54:38"},
		{"readme.txt"},
	}, labels(s.Grid.Rows()))
	assert.Equal(t, LeafID("/motion_images/20250801t120000-yard.mp4"), s.Grid.FocusedID())

	leaf, ok := s.Grid.Find(LeafID("/motion_images/readme.txt"))
	require.True(t, ok)
	assert.Equal(t, content.Document, leaf.LeafKind())
}

func TestRemoteVideoScreen(t *testing.T) {
	m := remoteMachine(t, content.NewLeaf("20250801T015438-frontdoor.mp4", "/motion_images/20250801T015438-frontdoor.mp4"))
	_, err := m.Transition(dashboard.ShowLeaves{})
	require.NoError(t, err)
	effects, err := m.Transition(dashboard.EnterLeafContent{Locator: "/motion_images/20250801T015438-frontdoor.mp4"})
	require.NoError(t, err)
	dl := effects[0].(dashboard.DownloadRemote)
	_, err = m.Transition(dashboard.Downloaded{RequestID: dl.RequestID, Locator: dl.Locator, LocalPath: "/tmp/x.mp4"})
	require.NoError(t, err)

	s := Present(m, Options{})
	assert.Equal(t, "frontdoor at 01:54:38", s.Title)
	assert.Equal(t, "/tmp/x.mp4", s.Subject)
	assert.Equal(t, [][]string{{"Back to clips", "Pause / resume"}}, labels(s.Grid.Rows()))
}

func TestControlsAreActivatable(t *testing.T) {
	var a Activatable = newControl("id", "label", KindNav, dashboard.CloseToGrid{})
	assert.Equal(t, "id", a.ID())
	assert.Equal(t, "label", a.Label())
	assert.Equal(t, dashboard.CloseToGrid{}, a.Activate())
}
