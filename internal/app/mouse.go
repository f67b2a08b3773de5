package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/app/popupctl"
	"github.com/camdash/camdash/internal/grid"
)

// handleMouseMsg treats a left click (or a tap on a touch screen) on a
// control as focus plus activation. The wheel walks focus.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.popups.ActivePopup() != popupctl.None {
		return m, nil
	}

	switch {
	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		id, ok := m.controlAt(msg)
		if !ok {
			return m, nil
		}
		m.focus(id)
		return m, m.activateFocused()

	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		dir := grid.Down
		if msg.Button == tea.MouseButtonWheelUp {
			dir = grid.Up
		}
		if !m.machine.Mode().IsFolder() {
			dir = tabOrder(dir)
		}
		if _, moved := m.screen.Grid.MoveFocus(dir); moved {
			m.focusID = m.screen.Grid.FocusedID()
		}
	}
	return m, nil
}

// controlAt finds the control drawn under the pointer.
func (m Model) controlAt(msg tea.MouseMsg) (string, bool) {
	for _, c := range m.screen.Grid.Cells() {
		z := m.zones.Get(m.zoneID(c.ID()))
		if z != nil && z.InBounds(msg) {
			return c.ID(), true
		}
	}
	return "", false
}

func (m Model) zoneID(controlID string) string {
	return m.zoneBase + controlID
}
