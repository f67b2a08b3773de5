package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/presenter"
)

// screenKey identifies a screen for focus keeping. Slideshow and Play share
// a key so toggling autoplay leaves focus on the toggle.
type screenKey struct {
	family string
	crumbs string
	level  dashboard.RemoteLevel
}

func keyOf(m *dashboard.Machine) screenKey {
	family := m.Mode().String()
	if m.Mode().IsSlideshow() {
		family = "slideshow"
	}
	k := screenKey{family: family, crumbs: m.Breadcrumbs().String()}
	if m.Mode() == dashboard.ModeRemoteFolder {
		k.level = m.RemoteLevel()
	}
	return k
}

// refresh presents the machine state again. Focus stays on the same control
// while the screen is the same one; otherwise the presenter's anchor wins.
func (m *Model) refresh() tea.Cmd {
	key := keyOf(m.machine)
	m.screen = presenter.Present(m.machine, m.layout)
	if key == m.key && m.focusID != "" {
		m.screen.Grid.Focus(m.focusID)
	}
	m.key = key
	m.focusID = m.screen.Grid.FocusedID()

	var cmds []tea.Cmd
	if m.machine.Loading() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	cmds = append(cmds, m.syncPhoto())
	return tea.Batch(cmds...)
}

// focus moves focus to id when the current grid has it.
func (m *Model) focus(id string) bool {
	if !m.screen.Grid.Focus(id) {
		return false
	}
	m.focusID = id
	return true
}

func (m *Model) focused() (presenter.Control, bool) {
	return m.screen.Grid.Find(m.focusID)
}
