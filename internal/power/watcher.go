package power

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

// Edge is a level change on the watched line.
type Edge int

const (
	Rising Edge = iota
	Falling
)

func (e Edge) String() string {
	if e == Falling {
		return "falling"
	}
	return "rising"
}

// LineRequester claims a GPIO line and calls handler on every edge until the
// returned Closer is closed.
type LineRequester func(chip string, offset int, handler func(Edge)) (io.Closer, error)

type Config struct {
	Chip         string
	Line         int
	StartupDelay time.Duration
}

// Watcher waits for the switch on a pulled-down line to be released and
// powers the host off once.
type Watcher struct {
	cfg      Config
	request  LineRequester
	shutdown Shutdowner
	logger   *slog.Logger

	once sync.Once
}

func NewWatcher(cfg Config, request LineRequester, shutdown Shutdowner, logger *slog.Logger) *Watcher {
	if request == nil {
		request = RequestGPIO
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{cfg: cfg, request: request, shutdown: shutdown, logger: logger}
}

// Run blocks until ctx is cancelled or the host has been asked to power off.
// The startup delay leaves time to stop the service when nothing is wired to
// the line.
func (w *Watcher) Run(ctx context.Context) error {
	if w.cfg.StartupDelay > 0 {
		w.logger.Info("waiting before arming power switch", "delay", w.cfg.StartupDelay)
		timer := time.NewTimer(w.cfg.StartupDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	released := make(chan struct{}, 1)
	line, err := w.request(w.cfg.Chip, w.cfg.Line, func(e Edge) {
		w.logger.Debug("power line edge", "edge", e)
		if e != Falling {
			return
		}
		select {
		case released <- struct{}{}:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("request %s line %d: %w", w.cfg.Chip, w.cfg.Line, err)
	}
	defer line.Close()
	w.logger.Info("power switch armed", "chip", w.cfg.Chip, "line", w.cfg.Line)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-released:
	}

	w.logger.Info("power switch released, shutting down")
	var shutdownErr error
	w.once.Do(func() {
		shutdownErr = w.shutdown.PowerOff(ctx)
	})
	if shutdownErr != nil {
		return fmt.Errorf("power off: %w", shutdownErr)
	}
	return nil
}

// ErrUnsupported is returned by RequestGPIO on platforms without the GPIO
// character device.
var ErrUnsupported = errors.New("gpio not supported on this platform")
