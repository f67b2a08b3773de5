package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/app/popupctl"
	"github.com/camdash/camdash/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Route by category first
	switch msg := msg.(type) {
	case RendererEndedMsg:
		m.logger.Info("renderer exited", "uri", msg.Ended.URI, "session", msg.Ended.Session, "err", msg.Ended.Err)
		cmd := m.dispatch(msg.Event())
		return m, tea.Batch(cmd, m.watchRenderer())
	case DashboardMessage:
		return m, m.dispatch(msg.Event())
	case PhotoMessage:
		return m.handlePhotoMsg(msg)
	case HostMessage:
		return m.handleHostMsg(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.popups.SetSize(msg.Width, msg.Height)
		return m, m.syncPhoto()

	case spinner.TickMsg:
		if !m.machine.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpbindings.CloseMsg:
		m.popups.Hide(popupctl.Help)
		return m, nil

	case PlayerClosedMsg:
		m.logger.Warn("renderer event channel closed")
		m.popups.ShowError("Video renderer stopped. Restart to watch cameras or clips.")
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}
