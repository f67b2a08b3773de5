package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/ui/popup"
)

// PopupHarness drives a popup.Popup in tests and records its commands.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

func (h *PopupHarness) Popup() popup.Popup { return h.popup }

func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg sends any message to the popup and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends the key named as tea.KeyMsg.String() would print it.
func (h *PopupHarness) SendKey(name string) tea.Cmd { return h.SendMsg(Key(name)) }
func (h *PopupHarness) SendEscape() tea.Cmd      { return h.SendKey("esc") }
func (h *PopupHarness) SendUp() tea.Cmd          { return h.SendKey("up") }
func (h *PopupHarness) SendDown() tea.Cmd        { return h.SendKey("down") }

// Commands returns every command collected so far.
func (h *PopupHarness) Commands() []tea.Cmd { return h.cmds }

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
