// Package app is the bubbletea root model of the dashboard. It feeds key,
// mouse, timer and async results into the dashboard state machine, runs the
// effects the machine asks for, and draws the presented screen.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/camdash/camdash/internal/dashboard"
	"github.com/camdash/camdash/internal/hoststat"
	"github.com/camdash/camdash/internal/player"
	"github.com/camdash/camdash/internal/ui/photoview"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// DashboardMessage carries an event for the state machine.
type DashboardMessage interface {
	tea.Msg
	Event() dashboard.Event
}

// PhotoMessage is implemented by messages related to the slideshow photo.
type PhotoMessage interface {
	tea.Msg
	photoMessage()
}

// HostMessage is implemented by host status messages.
type HostMessage interface {
	tea.Msg
	hostMessage()
}

// EventMsg wraps a dashboard event produced off the event loop: timer
// ticks, stream retries, remote listings, downloads, renderer exits.
type EventMsg struct {
	E dashboard.Event
}

func (m EventMsg) Event() dashboard.Event { return m.E }

// PhotoPreparedMsg is sent when a slideshow photo has been decoded and scaled.
type PhotoPreparedMsg struct {
	Path     string
	Prepared *photoview.Prepared
	Err      error
}

func (PhotoPreparedMsg) photoMessage() {}

// PhotoTransmittedMsg clears the one-shot image transmission after it has
// been written with a frame.
type PhotoTransmittedMsg struct {
	Seq int
}

func (PhotoTransmittedMsg) photoMessage() {}

// HostStatMsg is a host status sample.
type HostStatMsg struct {
	Sample hoststat.Sample
	Err    error
}

func (HostStatMsg) hostMessage() {}

// HostTickMsg asks for the next host status sample.
type HostTickMsg struct{}

func (HostTickMsg) hostMessage() {}

// RendererEndedMsg is an exit of the external renderer that nobody asked for.
type RendererEndedMsg struct {
	Ended player.Ended
}

func (m RendererEndedMsg) Event() dashboard.Event {
	return dashboard.StreamEnded{Generation: m.Ended.Session, Err: m.Ended.Err}
}

// PlayerClosedMsg is sent when the renderer's end channel closes.
type PlayerClosedMsg struct{}
