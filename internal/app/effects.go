package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/errmsg"
	"github.com/camdash/camdash/internal/player"
	"github.com/camdash/camdash/internal/state"
)

const (
	listTimeout     = 30 * time.Second
	downloadTimeout = 10 * time.Minute
)

// dispatch runs ev through the state machine, performs the resulting effects
// and presents the new state. Stale events are dropped silently.
func (m *Model) dispatch(ev dashboard.Event) tea.Cmd {
	effects, err := m.machine.Transition(ev)
	if err != nil {
		if errors.Is(err, dashboard.ErrStale) {
			m.logger.Debug("dropped stale event", "event", fmt.Sprintf("%T", ev))
		} else {
			m.logger.Warn("event rejected", "event", fmt.Sprintf("%T", ev), "mode", m.machine.Mode(), "err", err)
		}
		return nil
	}
	m.logger.Debug("transition", "event", fmt.Sprintf("%T", ev), "mode", m.machine.Mode())

	cmds := make([]tea.Cmd, 0, len(effects)+1)
	for _, eff := range effects {
		cmds = append(cmds, m.run(eff))
	}
	cmds = append(cmds, m.refresh())
	return tea.Batch(cmds...)
}

func (m *Model) run(eff dashboard.Effect) tea.Cmd {
	switch e := eff.(type) {
	case dashboard.ArmTimer:
		return tea.Tick(e.Interval, func(time.Time) tea.Msg {
			return EventMsg{E: dashboard.Tick{Generation: e.Generation}}
		})

	case dashboard.ScheduleRetry:
		m.logger.Info("stream retry scheduled", "attempt", e.Attempt, "delay", e.Delay)
		return tea.Tick(e.Delay, func(time.Time) tea.Msg {
			return EventMsg{E: dashboard.RetryStream{Generation: e.Generation}}
		})

	case dashboard.ListRemote:
		return m.listRemoteCmd(e)

	case dashboard.DownloadRemote:
		return m.downloadCmd(e)

	case dashboard.PlayURI:
		m.logger.Info("starting renderer", "uri", e.URI, "live", e.Live)
		if err := m.player.Play(e.URI, e.Generation); err != nil {
			m.logger.Error("renderer failed to start", "uri", e.URI, "err", err)
			return func() tea.Msg {
				return EventMsg{E: dashboard.StreamEnded{Generation: e.Generation, Err: err}}
			}
		}
		return nil

	case dashboard.StopPlayback:
		m.player.Stop()
		return nil

	case dashboard.TogglePlayback:
		m.player.Toggle()
		return nil
	}
	m.logger.Warn("unknown effect", "effect", fmt.Sprintf("%T", eff))
	return nil
}

func (m *Model) listRemoteCmd(e dashboard.ListRemote) tea.Cmd {
	client, parent := m.archive, m.ctx
	return func() tea.Msg {
		if client == nil {
			return EventMsg{E: dashboard.RemoteListed{RequestID: e.RequestID, Err: errors.New("no clip archive configured")}}
		}
		ctx, cancel := context.WithTimeout(parent, listTimeout)
		defer cancel()
		entries, err := client.List(ctx, e.Path)
		return EventMsg{E: dashboard.RemoteListed{RequestID: e.RequestID, Entries: entries, Err: err}}
	}
}

// downloadCmd serves a clip from the download cache when its file is still
// there, and downloads it otherwise.
func (m *Model) downloadCmd(e dashboard.DownloadRemote) tea.Cmd {
	client, cache, dir, parent, logger := m.archive, m.downloads, m.downloadDir, m.ctx, m.logger
	return func() tea.Msg {
		result := dashboard.Downloaded{RequestID: e.RequestID, Locator: e.Locator}
		if cache != nil {
			d, ok, err := cache.LookupDownload(e.Locator)
			switch {
			case err != nil:
				logger.Warn(errmsg.Format(errmsg.OpCacheLookup, err), "locator", e.Locator)
			case ok:
				logger.Debug("clip served from cache", "locator", e.Locator, "path", d.LocalPath)
				result.LocalPath = d.LocalPath
				return EventMsg{E: result}
			}
		}
		if client == nil {
			result.Err = errors.New("no clip archive configured")
			return EventMsg{E: result}
		}

		ctx, cancel := context.WithTimeout(parent, downloadTimeout)
		defer cancel()
		start := time.Now()
		local, err := client.Download(ctx, e.Locator, dir)
		if err != nil {
			result.Err = err
			return EventMsg{E: result}
		}
		result.LocalPath = local

		var size int64
		if info, serr := os.Stat(local); serr == nil {
			size = info.Size()
		}
		logger.Info("clip downloaded", "locator", e.Locator, "path", local,
			"size", humanize.IBytes(uint64(max(size, 0))), "took", time.Since(start).Round(time.Millisecond))

		if cache != nil {
			if err := cache.RecordDownload(state.Download{Locator: e.Locator, LocalPath: local, Size: size}); err != nil {
				logger.Warn(errmsg.Format(errmsg.OpCacheRecord, err), "locator", e.Locator)
			}
		}
		return EventMsg{E: result}
	}
}

func (m Model) watchRenderer() tea.Cmd {
	if m.player == nil {
		return nil
	}
	return waitForChannel(m.player.Ended(), func(e player.Ended, ok bool) tea.Msg {
		if !ok {
			return PlayerClosedMsg{}
		}
		return RendererEndedMsg{Ended: e}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
