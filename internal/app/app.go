package app

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/camdash/camdash/internal/app/popupctl"
	"github.com/camdash/camdash/internal/archive"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/hoststat"
	"github.com/camdash/camdash/internal/keymap"
	"github.com/camdash/camdash/internal/player"
	"github.com/camdash/camdash/internal/presenter"
	"github.com/camdash/camdash/internal/state"
	"github.com/camdash/camdash/internal/ui/photoview"
	"github.com/camdash/camdash/internal/ui/styles"
)

// HostCollector samples host metrics. hoststat.Collect in production.
type HostCollector func(ctx context.Context, diskPath string) (hoststat.Sample, error)

// Options wires the model to its collaborators. Machine and Player are
// required; everything else may be left zero to disable the feature.
type Options struct {
	Machine *dashboard.Machine
	Player  player.Interface

	// Archive serves ListRemote and DownloadRemote effects.
	Archive archive.Client
	// Downloads remembers finished downloads across runs.
	Downloads   state.Interface
	DownloadDir string

	Photos     *photoview.Renderer
	PhotoCache *photoview.Cache

	Layout presenter.Options
	Keys   *keymap.Resolver

	HostStats HostCollector
	// DiskPath is the filesystem reported in the host status line.
	DiskPath string

	Logger *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	machine *dashboard.Machine
	screen  presenter.Screen
	key     screenKey
	focusID string
	layout  presenter.Options

	player      player.Interface
	archive     archive.Client
	downloads   state.Interface
	downloadDir string

	photos          *photoview.Renderer
	photoCache      *photoview.Cache
	photoWant       string
	photoErr        string
	pendingTransmit string
	transmitSeq     int

	keys     *keymap.Resolver
	popups   *popupctl.Manager
	zones    *zone.Manager
	zoneBase string

	spinner  spinner.Model
	spinning bool

	hostStats HostCollector
	diskPath  string
	host      hoststat.Sample
	hostOK    bool

	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	width  int
	height int
}

// New creates the root model on the camera grid.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := opts.Keys
	if keys == nil {
		keys = keymap.Default()
	}
	zones := zone.New()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Warning

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		machine:     opts.Machine,
		layout:      opts.Layout,
		player:      opts.Player,
		archive:     opts.Archive,
		downloads:   opts.Downloads,
		downloadDir: opts.DownloadDir,
		photos:      opts.Photos,
		photoCache:  opts.PhotoCache,
		keys:        keys,
		popups:      popupctl.New(),
		zones:       zones,
		zoneBase:    zones.NewPrefix(),
		spinner:     sp,
		hostStats:   opts.HostStats,
		diskPath:    opts.DiskPath,
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger,
	}
	m.refresh()
	return m
}

// Init starts the renderer watch and the host status sampling.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.watchRenderer(), m.sampleHost())
}

// Screen is the screen currently presented.
func (m Model) Screen() presenter.Screen { return m.screen }

// FocusedID is the id of the focused control.
func (m Model) FocusedID() string { return m.focusID }

// Machine is the underlying state machine.
func (m Model) Machine() *dashboard.Machine { return m.machine }

// Shutdown cancels in-flight requests. It does not close collaborators;
// their owner does.
func (m Model) Shutdown() {
	m.cancel()
}
