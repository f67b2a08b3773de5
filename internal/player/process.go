package player

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// stopGrace is how long a renderer gets to exit after SIGTERM before it is
// killed.
const stopGrace = 2 * time.Second

type run struct {
	cmd     *exec.Cmd
	uri     string
	session int
	exited  chan struct{}
}

// Process plays URIs by running an external program (mpv by default) with the
// URI as its last argument.
type Process struct {
	command string
	args    []string
	logger  *slog.Logger

	mu          sync.Mutex
	current     *run
	state       State
	started     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration

	ended     chan Ended
	done      chan struct{}
	closeOnce sync.Once
}

// NewProcess creates a player that runs command with args followed by the URI.
func NewProcess(command string, args []string, logger *slog.Logger) *Process {
	return &Process{
		command: command,
		args:    append([]string(nil), args...),
		logger:  logger,
		ended:   make(chan Ended, 1),
		done:    make(chan struct{}),
	}
}

// Play stops any running renderer and starts a new one for uri. session is
// echoed back in the Ended report of this renderer.
func (p *Process) Play(uri string, session int) error {
	p.Stop()

	args := append(append([]string(nil), p.args...), uri)
	cmd := exec.Command(p.command, args...)
	// Inherit fd 2 so renderer errors reach the log via stderr capture.
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.command, err)
	}

	r := &run{cmd: cmd, uri: uri, session: session, exited: make(chan struct{})}
	p.mu.Lock()
	p.current = r
	p.state = Playing
	p.started = time.Now()
	p.pausedTotal = 0
	p.mu.Unlock()

	p.logger.Info("renderer started", "command", p.command, "uri", uri, "pid", cmd.Process.Pid)
	go p.wait(r)
	return nil
}

func (p *Process) wait(r *run) {
	err := r.cmd.Wait()
	close(r.exited)

	p.mu.Lock()
	current := p.current == r
	if current {
		p.current = nil
		p.state = Stopped
	}
	p.mu.Unlock()

	if !current {
		return
	}
	p.logger.Info("renderer exited", "uri", r.uri, "err", err)
	select {
	case p.ended <- Ended{URI: r.uri, Session: r.session, Err: err}:
	case <-p.done:
	}
}

// Stop terminates the running renderer without reporting it as ended.
func (p *Process) Stop() {
	p.mu.Lock()
	r := p.current
	p.current = nil
	p.state = Stopped
	p.mu.Unlock()

	if r == nil {
		return
	}
	pid := r.cmd.Process.Pid
	// A stopped process only acts on SIGTERM once continued.
	_ = unix.Kill(pid, unix.SIGCONT)
	_ = unix.Kill(pid, unix.SIGTERM)
	go func() {
		select {
		case <-r.exited:
		case <-time.After(stopGrace):
			_ = r.cmd.Process.Kill()
		}
	}()
}

func (p *Process) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing || p.current == nil {
		return
	}
	if err := unix.Kill(p.current.cmd.Process.Pid, unix.SIGSTOP); err != nil {
		p.logger.Warn("pause renderer", "err", err)
		return
	}
	p.state = Paused
	p.pausedAt = time.Now()
}

func (p *Process) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused || p.current == nil {
		return
	}
	if err := unix.Kill(p.current.cmd.Process.Pid, unix.SIGCONT); err != nil {
		p.logger.Warn("resume renderer", "err", err)
		return
	}
	p.state = Playing
	p.pausedTotal += time.Since(p.pausedAt)
}

func (p *Process) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
		// Nothing to toggle when stopped
	}
}

func (p *Process) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// URI returns what is playing, or "".
func (p *Process) URI() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return ""
	}
	return p.current.uri
}

// Elapsed is the play time of the current renderer, pauses excluded.
func (p *Process) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch p.state {
	case Playing:
		return time.Since(p.started) - p.pausedTotal
	case Paused:
		return p.pausedAt.Sub(p.started) - p.pausedTotal
	default:
		return 0
	}
}

func (p *Process) Ended() <-chan Ended {
	return p.ended
}

// Close stops playback and releases the Ended channel readers.
func (p *Process) Close() {
	p.Stop()
	p.closeOnce.Do(func() { close(p.done) })
}
