//go:build linux

package power

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	logindDest      = "org.freedesktop.login1"
	logindPath      = "/org/freedesktop/login1"
	logindInterface = "org.freedesktop.login1.Manager"
)

// Logind asks systemd-logind on the system bus to power off.
type Logind struct{}

func (Logind) PowerOff(ctx context.Context) error {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return fmt.Errorf("connect system bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(logindDest, logindPath)
	// PowerOff(interactive bool)
	call := obj.CallWithContext(ctx, logindInterface+".PowerOff", 0, false)
	if call.Err != nil {
		return fmt.Errorf("logind PowerOff: %w", call.Err)
	}
	return nil
}
