package player

import (
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState(t *testing.T) {
	tests := []struct {
		state  State
		name   string
		active bool
	}{
		{Stopped, "Stopped", false},
		{Playing, "Playing", true},
		{Paused, "Paused", true},
		{State(99), "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.active, tt.state.IsActive())
		})
	}
}

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func newTestProcess(command string, args ...string) *Process {
	return NewProcess(command, args, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func waitEnded(t *testing.T, p *Process) Ended {
	t.Helper()
	select {
	case e := <-p.Ended():
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("renderer did not report an end")
		return Ended{}
	}
}

func TestProcess_CleanExitIsReported(t *testing.T) {
	requireTool(t, "sh")
	p := newTestProcess("sh", "-c", "exit 0")
	defer p.Close()

	require.NoError(t, p.Play("clip.mp4", 7))
	e := waitEnded(t, p)
	assert.Equal(t, "clip.mp4", e.URI)
	assert.Equal(t, 7, e.Session)
	require.NoError(t, e.Err)
	assert.Equal(t, Stopped, p.State())
}

func TestProcess_FailureIsReported(t *testing.T) {
	requireTool(t, "sh")
	p := newTestProcess("sh", "-c", "exit 3")
	defer p.Close()

	require.NoError(t, p.Play("rtsp://cam", 1))
	e := waitEnded(t, p)
	var exitErr *exec.ExitError
	require.True(t, errors.As(e.Err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestProcess_StopIsNotReported(t *testing.T) {
	requireTool(t, "sleep")
	p := newTestProcess("sleep")
	defer p.Close()

	require.NoError(t, p.Play("30", 1))
	assert.Equal(t, Playing, p.State())
	assert.Equal(t, "30", p.URI())

	p.Toggle()
	assert.Equal(t, Paused, p.State())
	p.Toggle()
	assert.Equal(t, Playing, p.State())

	p.Stop()
	assert.Equal(t, Stopped, p.State())
	assert.Empty(t, p.URI())
	assert.Zero(t, p.Elapsed())

	select {
	case e := <-p.Ended():
		t.Fatalf("unexpected end report %+v", e)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestProcess_StartFailure(t *testing.T) {
	p := newTestProcess("/nonexistent/renderer")
	defer p.Close()
	require.Error(t, p.Play("x", 1))
	assert.Equal(t, Stopped, p.State())
}

func TestMock(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Play("a", 4))
	m.Toggle()
	assert.Equal(t, Paused, m.State())
	m.SimulateEnded(nil)
	e := <-m.Ended()
	assert.Equal(t, "a", e.URI)
	assert.Equal(t, 4, e.Session)

	m.SetPlayError(errors.New("boom"))
	require.Error(t, m.Play("b", 5))
	assert.Equal(t, []string{"a", "b"}, m.PlayCalls())
	m.Stop()
	assert.Equal(t, 1, m.Stops())
}
