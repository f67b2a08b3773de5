//go:build unix

package stderr

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestCaptureLogsLines(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))

	require.NoError(t, Start(logger))
	require.NoError(t, Start(logger), "second start is a no-op")

	fmt.Fprintln(os.Stderr, "renderer: stream not found")
	fmt.Fprintln(os.Stderr, "   ")
	Stop()

	assert.Contains(t, out.String(), `line="renderer: stream not found"`)
	assert.Equal(t, 1, bytes.Count([]byte(out.String()), []byte("msg=stderr")), "blank lines are dropped")
}

func TestStopWithoutStart(t *testing.T) {
	done := make(chan struct{})
	go func() {
		Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked")
	}
}
