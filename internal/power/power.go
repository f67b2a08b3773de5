// Package power turns the kiosk off when the power switch on a GPIO line is
// released.
package power

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
)

// Shutdowner powers the host off.
type Shutdowner interface {
	PowerOff(ctx context.Context) error
}

// Command runs an external command, by default "shutdown -h now".
type Command struct {
	Name string
	Args []string
}

// DefaultCommand is the shutdown fallback used when logind is unreachable.
var DefaultCommand = Command{Name: "shutdown", Args: []string{"-h", "now"}}

func (c Command) PowerOff(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, c.Name, c.Args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", c.Name, err, out)
	}
	return nil
}

// Chain tries each Shutdowner in order until one succeeds.
type Chain struct {
	Steps  []Shutdowner
	Logger *slog.Logger
}

func (c Chain) PowerOff(ctx context.Context) error {
	var errs []error
	for _, s := range c.Steps {
		err := s.PowerOff(ctx)
		if err == nil {
			return nil
		}
		if c.Logger != nil {
			c.Logger.Warn("power off attempt failed", "method", fmt.Sprintf("%T", s), "err", err)
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return errors.New("no shutdown method configured")
	}
	return errors.Join(errs...)
}

// Default returns logind with the shutdown command as fallback.
func Default(logger *slog.Logger) Shutdowner {
	return Chain{Steps: []Shutdowner{Logind{}, DefaultCommand}, Logger: logger}
}
