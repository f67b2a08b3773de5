package archive

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camdash/camdash/internal/content"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateUnique(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		f, err := CreateUnique(dir, "clip.mp4")
		require.NoError(t, err)
		got = append(got, filepath.Base(f.Name()))
		require.NoError(t, f.Close())
	}
	assert.Equal(t, []string{"clip.mp4", "clip_1.mp4", "clip_2.mp4"}, got)
}

func TestCreateUnique_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "clips")
	f, err := CreateUnique(dir, "a.mp4")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, filepath.Join(dir, "a.mp4"))
}

func TestDirClient(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "2025-08-01"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".trash"), 0o755))
	clip := filepath.Join(root, "2025-08-01", "20250801T015438-frontdoor.mp4")
	require.NoError(t, os.WriteFile(clip, []byte("video"), 0o600))

	c := NewDirClient(root, discardLogger())
	ctx := context.Background()

	top, err := c.List(ctx, "/")
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, content.NewFolder("2025-08-01", "/2025-08-01"), top[0])

	day, err := c.List(ctx, top[0].Locator)
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, content.Video, day[0].LeafKind)
	assert.Equal(t, "/2025-08-01/20250801T015438-frontdoor.mp4", day[0].Locator)

	target := t.TempDir()
	first, err := c.Download(ctx, day[0].Locator, target)
	require.NoError(t, err)
	second, err := c.Download(ctx, day[0].Locator, target)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "20250801T015438-frontdoor_1.mp4", filepath.Base(second))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "video", string(data))
}

func TestDirClient_NotFound(t *testing.T) {
	c := NewDirClient(t.TempDir(), discardLogger())

	_, err := c.List(context.Background(), "/missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = c.Download(context.Background(), "/missing.mp4", t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDirClient_StaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	c := NewDirClient(root, discardLogger())
	assert.Equal(t, filepath.Join(root, "etc"), c.resolve("../../etc"))
}

func TestDirClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDirClient(t.TempDir(), discardLogger()).List(ctx, "/")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SetListing("/m", content.NewFolder("a", "/m/a"))

	got, err := m.List(context.Background(), "/m")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = m.List(context.Background(), "/other")
	require.ErrorIs(t, err, ErrNotFound)

	local, err := m.Download(context.Background(), "/m/a/x.mp4", "/tmp/dl")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/dl/x.mp4", local)
	assert.Equal(t, []string{"/m", "/other"}, m.ListCalls())
	assert.Equal(t, []string{"/m/a/x.mp4"}, m.DownloadCalls())
}
