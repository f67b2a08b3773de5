//go:build !linux

package power

import (
	"context"
	"errors"
)

// Logind is unavailable outside Linux.
type Logind struct{}

func (Logind) PowerOff(context.Context) error {
	return errors.New("logind is only available on linux")
}
