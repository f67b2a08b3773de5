// Command powerwatch powers the host off when the power switch wired to a
// GPIO line is released.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camdash/camdash/internal/config"
	"github.com/camdash/camdash/internal/power"
)

func main() {
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	// Runs as a system service; the journal collects stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	pc := cfg.GetPowerConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := power.NewWatcher(power.Config{
		Chip:         pc.Chip,
		Line:         pc.Line,
		StartupDelay: time.Duration(pc.StartupDelayS) * time.Second,
	}, power.RequestGPIO, power.Default(logger), logger)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("power watcher stopped", "err", err)
		os.Exit(1) //nolint:gocritic // stop only releases the signal handler
	}
}
