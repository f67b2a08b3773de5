package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/app/handler"
	"github.com/camdash/camdash/internal/app/popupctl"
	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/grid"
	"github.com/camdash/camdash/internal/keymap"
	"github.com/camdash/camdash/internal/presenter"
)

// handleKeyMsg routes a key to the open popup, else through the dispatcher
// chain.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.popups.HandleKey(msg); handled {
		return m, cmd
	}

	key := handler.Resolve(m.keys, msg.String(), keyContexts(m.machine.Mode())...)
	_, cmd := handler.Chain(key,
		m.handleQuit,
		m.handleHelp,
		m.handleBack,
		m.handleActivate,
		m.handleCameraShortcut,
		m.handlePlayPause,
		m.handleDirection,
	)
	return m, cmd
}

// handleQuit stops the renderer and exits. Closing the state database is
// left to the owner of the program.
func (m *Model) handleQuit(key handler.Key) handler.Result {
	if key.Action != keymap.ActionQuit {
		return handler.NotHandled
	}
	m.player.Stop()
	m.Shutdown()
	return handler.Handled(tea.Quit)
}

func (m *Model) handleHelp(key handler.Key) handler.Result {
	if key.Action != keymap.ActionHelp {
		return handler.NotHandled
	}
	contexts := keyContexts(m.machine.Mode())
	m.logger.Debug("show popup", "popup", popupctl.Help, "contexts", contexts)
	return handler.Handled(m.popups.ShowHelp(contexts))
}

// keyContexts lists the binding contexts active in mode.
func keyContexts(mode dashboard.Mode) []string {
	contexts := []string{keymap.ContextGlobal}
	switch {
	case mode == dashboard.ModeCamera:
		contexts = append(contexts, keymap.ContextCamera)
	case mode.IsSlideshow():
		contexts = append(contexts, keymap.ContextSlideshow)
	case mode == dashboard.ModeRemoteVideo:
		contexts = append(contexts, keymap.ContextVideo)
	}
	return contexts
}

// handleBack leaves one level. On the camera grid there is nothing to leave,
// so focus goes to the first archive entry point instead.
func (m *Model) handleBack(key handler.Key) handler.Result {
	if key.Action != keymap.ActionBack {
		return handler.NotHandled
	}
	switch m.machine.Mode() {
	case dashboard.ModeCamera:
		if !m.focus(presenter.IDOpenPhotos) {
			m.focus(presenter.IDOpenClips)
		}
		return handler.HandledNoCmd
	case dashboard.ModeCameraFullscreen:
		return handler.Handled(m.dispatch(dashboard.CloseToGrid{}))
	default:
		return handler.Handled(m.dispatch(dashboard.LeaveFolder{}))
	}
}

// handleActivate invokes the focused control, whatever its kind.
func (m *Model) handleActivate(key handler.Key) handler.Result {
	if key.Action != keymap.ActionActivate {
		return handler.NotHandled
	}
	return handler.Handled(m.activateFocused())
}

func (m *Model) activateFocused() tea.Cmd {
	ctl, ok := m.focused()
	if !ok || ctl.Activate() == nil {
		return nil
	}
	m.logger.Debug("activate", "control", ctl.ID())
	return m.dispatch(ctl.Activate())
}

func (m *Model) handleCameraShortcut(key handler.Key) handler.Result {
	idx, ok := key.Action.CameraIndex()
	if !ok || m.machine.Mode() != dashboard.ModeCamera {
		return handler.NotHandled
	}
	if idx >= len(m.machine.Cameras()) {
		return handler.HandledNoCmd
	}
	return handler.Handled(m.dispatch(dashboard.OpenCamera{Index: idx}))
}

func (m *Model) handlePlayPause(key handler.Key) handler.Result {
	if key.Action != keymap.ActionPlayPause {
		return handler.NotHandled
	}
	mode := m.machine.Mode()
	if !mode.IsSlideshow() && mode != dashboard.ModeRemoteVideo {
		return handler.NotHandled
	}
	return handler.Handled(m.dispatch(dashboard.TogglePlay{}))
}

// handleDirection maps both direction pairs. Play steps through the photos;
// folder browsers move vertically on up/down; every other screen walks tab
// order.
func (m *Model) handleDirection(key handler.Key) handler.Result {
	dir, ok := direction(key.Action)
	if !ok {
		return handler.NotHandled
	}

	mode := m.machine.Mode()
	if mode == dashboard.ModePlay {
		if dir == grid.Down || dir == grid.Right {
			return handler.Handled(m.dispatch(dashboard.Next{}))
		}
		return handler.Handled(m.dispatch(dashboard.Previous{}))
	}

	if !mode.IsFolder() {
		dir = tabOrder(dir)
	}
	if _, moved := m.screen.Grid.MoveFocus(dir); moved {
		m.focusID = m.screen.Grid.FocusedID()
	}
	return handler.HandledNoCmd
}

func direction(a keymap.Action) (grid.Direction, bool) {
	switch a {
	case keymap.ActionMoveUp:
		return grid.Up, true
	case keymap.ActionMoveDown:
		return grid.Down, true
	case keymap.ActionMoveLeft:
		return grid.Left, true
	case keymap.ActionMoveRight:
		return grid.Right, true
	}
	return 0, false
}

// tabOrder folds vertical moves onto tab order: up is previous, down next.
func tabOrder(d grid.Direction) grid.Direction {
	switch d {
	case grid.Up:
		return grid.Left
	case grid.Down:
		return grid.Right
	}
	return d
}
