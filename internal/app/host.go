package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/hoststat"
)

const hostSampleTimeout = 5 * time.Second

// sampleHost collects one host status sample. It returns nil when host
// status is disabled.
func (m Model) sampleHost() tea.Cmd {
	if m.hostStats == nil {
		return nil
	}
	collect, parent, path := m.hostStats, m.ctx, m.diskPath
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, hostSampleTimeout)
		defer cancel()
		s, err := collect(ctx, path)
		return HostStatMsg{Sample: s, Err: err}
	}
}

func hostTickCmd() tea.Cmd {
	return tea.Tick(hoststat.Interval, func(time.Time) tea.Msg {
		return HostTickMsg{}
	})
}

func (m Model) handleHostMsg(msg HostMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case HostStatMsg:
		if msg.Err != nil {
			m.logger.Debug("host status incomplete", "err", msg.Err)
		}
		// Partial samples still carry what could be read.
		m.host = msg.Sample
		m.hostOK = msg.Sample.HasCPU || msg.Sample.HasMem || msg.Sample.HasDisk
		return m, hostTickCmd()

	case HostTickMsg:
		// Only the camera grid shows host status.
		if m.machine.Mode() != dashboard.ModeCamera {
			return m, hostTickCmd()
		}
		return m, m.sampleHost()
	}
	return m, nil
}
