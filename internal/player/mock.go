package player

import (
	"sync"
	"time"
)

// Mock is a test double for Process.
type Mock struct {
	mu        sync.Mutex
	state     State
	uri       string
	session   int
	elapsed   time.Duration
	playErr   error
	playCalls []string
	stops     int
	ended     chan Ended
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{ended: make(chan Ended, 1)}
}

func (m *Mock) Play(uri string, session int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls = append(m.playCalls, uri)
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.uri = uri
	m.session = session
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
	m.state = Stopped
	m.uri = ""
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.State() {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) URI() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uri
}

func (m *Mock) Elapsed() time.Duration { return m.elapsed }

func (m *Mock) Ended() <-chan Ended { return m.ended }

func (m *Mock) Close() { m.Stop() }

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.playCalls...)
}

func (m *Mock) Stops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// SimulateEnded reports the current renderer as exited.
func (m *Mock) SimulateEnded(err error) {
	m.mu.Lock()
	uri, session := m.uri, m.session
	m.state = Stopped
	m.mu.Unlock()
	select {
	case m.ended <- Ended{URI: uri, Session: session, Err: err}:
	default:
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
