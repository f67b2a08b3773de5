//go:build unix

// Package stderr redirects file descriptor 2 into the log while the
// dashboard owns the terminal. The video renderer inherits it, so its
// diagnostics end up in the log instead of on top of the grid.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// stopTimeout bounds the wait for a renderer that still holds the pipe.
const stopTimeout = time.Second

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start begins capturing stderr. Each non-empty line is logged at warn level
// on logger. If capture cannot be set up the program can continue; output
// then goes to the terminal as usual.
func Start(logger *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if origStderr >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr, pipeRead, pipeWrite = orig, r, w
	done = make(chan struct{})

	go func(r *os.File, done chan struct{}) {
		defer close(done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				logger.Warn("stderr", "line", line)
			}
		}
	}(r, done)

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for captured lines to be
// logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if origStderr < 0 {
		return
	}

	_ = unix.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(origStderr)
	origStderr = -1

	// fd 2 no longer refers to the pipe, so closing the write end ends the
	// reader once the child processes holding it exit.
	pipeWrite.Close()
	select {
	case <-done:
	case <-time.After(stopTimeout):
	}
	pipeRead.Close()
}
