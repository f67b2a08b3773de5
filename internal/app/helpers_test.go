package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/camdash/camdash/internal/archive"
	"github.com/camdash/camdash/internal/camera"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/player"
	"github.com/camdash/camdash/internal/state"
	"github.com/camdash/camdash/internal/ui/testutil"
)

const remoteRoot = "/motion_images"

type fixture struct {
	player    *player.Mock
	archive   *archive.Mock
	downloads *state.Mock
	photoRoot string
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	cameras []camera.Source
	photos  bool
	remote  bool
	setup   func(root string)
	opts    func(*Options)
}

func withPhotos(setup func(root string)) fixtureOption {
	return func(c *fixtureConfig) {
		c.photos = true
		c.setup = setup
	}
}

func withRemote() fixtureOption {
	return func(c *fixtureConfig) { c.remote = true }
}

func withCameras(cams ...camera.Source) fixtureOption {
	return func(c *fixtureConfig) { c.cameras = cams }
}

func withOptions(f func(*Options)) fixtureOption {
	return func(c *fixtureConfig) { c.opts = f }
}

func defaultCameras() []camera.Source {
	return []camera.Source{
		{Name: "Front", URI: "rtsp://cam1/stream"},
		{Name: "Garage", URI: "rtsp://cam2/stream"},
	}
}

// newTestModel builds a model over mocks and a temp photo root, sized to
// an 80x40 terminal.
func newTestModel(t *testing.T, opts ...fixtureOption) (Model, *fixture) {
	t.Helper()
	cfg := fixtureConfig{cameras: defaultCameras()}
	for _, o := range opts {
		o(&cfg)
	}

	f := &fixture{
		player:    player.NewMock(),
		archive:   archive.NewMock(),
		downloads: state.NewMock(),
	}

	machineOpts := dashboard.Options{
		Cameras:           cfg.cameras,
		RemoteEnabled:     cfg.remote,
		RemoteRoot:        remoteRoot,
		SlideshowInterval: time.Hour,
		StreamRetryDelay:  time.Hour,
		StreamMaxRetries:  3,
	}
	if cfg.photos {
		f.photoRoot = t.TempDir()
		if cfg.setup != nil {
			cfg.setup(f.photoRoot)
		}
		src, err := content.NewLocalSource(f.photoRoot)
		require.NoError(t, err)
		machineOpts.Photos = src
	}

	appOpts := Options{
		Machine:     dashboard.New(machineOpts),
		Player:      f.player,
		Downloads:   f.downloads,
		DownloadDir: "/clips",
	}
	if cfg.remote {
		appOpts.Archive = f.archive
	}
	if cfg.opts != nil {
		cfg.opts(&appOpts)
	}

	m := New(appOpts)
	t.Cleanup(m.Shutdown)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return next.(Model), f
}

// settle runs cmd and every command it leads to, feeding results back into
// the model. Commands that do not finish quickly (timers, the renderer watch)
// are dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "command chain did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := runQuick(c)
		if !ok || msg == nil {
			continue
		}
		if batch, isBatch := msg.(tea.BatchMsg); isBatch {
			queue = append(queue, batch...)
			continue
		}
		next, nextCmd := m.Update(msg)
		m = next.(Model)
		queue = append(queue, nextCmd)
	}
	return m
}

func runQuick(c tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- c() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(50 * time.Millisecond):
		return nil, false
	}
}

// press sends one key and settles the result.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(testutil.Key(k))
		m = settle(t, next.(Model), cmd)
	}
	return m
}

// send delivers msg and settles the result.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func writeImage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for x := range 8 {
		for y := range 6 {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

// labels returns the control labels of one grid row.
func labels(m Model, row int) []string {
	rows := m.Screen().Grid.Rows()
	if row >= len(rows) {
		return nil
	}
	out := make([]string, len(rows[row]))
	for i, c := range rows[row] {
		out[i] = c.Label()
	}
	return out
}

func allIDs(m Model) string {
	var ids []string
	for _, c := range m.Screen().Grid.Cells() {
		ids = append(ids, c.ID())
	}
	return strings.Join(ids, ",")
}
