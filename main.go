package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/camdash/camdash/internal/app"
	"github.com/camdash/camdash/internal/archive"
	"github.com/camdash/camdash/internal/camera"
	"github.com/camdash/camdash/internal/config"
	"github.com/camdash/camdash/internal/content"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/errmsg"
	"github.com/camdash/camdash/internal/hoststat"
	"github.com/camdash/camdash/internal/icons"
	"github.com/camdash/camdash/internal/player"
	"github.com/camdash/camdash/internal/presenter"
	"github.com/camdash/camdash/internal/state"
	"github.com/camdash/camdash/internal/stderr"
	"github.com/camdash/camdash/internal/ui/photoview"
)

// openLog sets up the file logger. The terminal belongs to the dashboard, so
// nothing is logged to stderr once it starts.
func openLog(cfg config.LogConfig, verbose bool) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f, nil
}

func newArchive(cfg config.ArchiveConfig, logger *slog.Logger) (archive.Client, error) {
	switch cfg.Provider {
	case "dropbox":
		return archive.NewDropboxClient(cfg.Token, logger), nil
	case "dir":
		return archive.NewDirClient(cfg.Dir, logger), nil
	}
	return nil, fmt.Errorf("unknown archive provider %q", cfg.Provider)
}

type program struct {
	model  app.Model
	state  *state.Manager
	player *player.Process
}

func (p *program) Close() {
	if p.player != nil {
		p.player.Close()
	}
	if p.state != nil {
		_ = p.state.Close() //nolint:errcheck // shutting down
	}
}

func initialModel(cfg *config.Config, logger *slog.Logger) (*program, error) {
	icons.Init(cfg.Icons)

	cams, err := camera.Load(cfg.CamerasFile)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpLoadCameras, err))
	}
	logger.Info("cameras loaded", "count", len(cams), "file", cfg.CamerasFile)

	photosCfg := cfg.GetPhotosConfig()
	archiveCfg := cfg.GetArchiveConfig()
	playerCfg := cfg.GetPlayerConfig()

	machineOpts := dashboard.Options{
		Cameras:           cams,
		RemoteEnabled:     cfg.HasArchive(),
		RemoteRoot:        archiveCfg.Root,
		SlideshowInterval: cfg.SlideshowInterval(),
		StreamRetryDelay:  time.Duration(playerCfg.StreamRetryDelayMS) * time.Millisecond,
		StreamMaxRetries:  playerCfg.StreamMaxRetries,
	}
	if cfg.HasPhotos() {
		src, err := content.NewLocalSource(photosCfg.Root)
		if err != nil {
			logger.Warn("photo archive unavailable", "root", photosCfg.Root, "err", err)
		} else {
			machineOpts.Photos = src
		}
	}

	p := &program{}
	opts := app.Options{
		Machine: dashboard.New(machineOpts),
		Layout: presenter.Options{
			PhotoColumns:  photosCfg.Columns,
			RemoteColumns: archiveCfg.Columns,
		},
		HostStats: hoststat.Collect,
		Logger:    logger,
	}

	if cfg.HasArchive() {
		client, err := newArchive(archiveCfg, logger)
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(archiveCfg.DownloadDir, 0o755); err != nil {
			return nil, fmt.Errorf("create download dir: %w", err)
		}
		opts.Archive = client
		opts.DownloadDir = archiveCfg.DownloadDir
		opts.DiskPath = archiveCfg.DownloadDir

		p.state, err = state.Open()
		if err != nil {
			// Clips still play; they are downloaded again on every open.
			logger.Warn("download cache unavailable", "err", err)
		} else {
			opts.Downloads = p.state
			if n, size, err := p.state.DownloadStats(); err == nil {
				logger.Info("download cache", "clips", n, "size", humanize.IBytes(uint64(max(size, 0))))
			}
		}
	}

	if proto := photoview.Detect(); proto != nil && machineOpts.Photos != nil {
		logger.Info("photo protocol", "name", proto.Name())
		opts.Photos = photoview.New(proto)
		if cache, err := photoview.NewCache(""); err == nil {
			opts.PhotoCache = cache
		} else {
			logger.Warn("photo cache unavailable", "err", err)
		}
	}

	p.player = player.NewProcess(playerCfg.Command, playerCfg.Args, logger)
	opts.Player = p.player

	p.model = app.New(opts)
	return p, nil
}

func main() {
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := openLog(cfg.GetLogConfig(), *verbose)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	p, err := initialModel(cfg, logger)
	if err != nil {
		logger.Error("initialization failed", "err", err)
		stderr.WriteOriginal(fmt.Sprintf("Error initializing: %v\n", err))
		os.Exit(1) //nolint:gocritic // log file is append-only
	}
	defer p.Close()

	prog := tea.NewProgram(p.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1) //nolint:gocritic // deferred cleanup is best-effort
	}
}
