// Package archive talks to the remote store of motion clips.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/camdash/camdash/internal/content"
)

// ErrNotFound is returned when a remote path does not exist.
var ErrNotFound = errors.New("remote path not found")

// Client lists remote folders and downloads remote files. Locators are
// remote paths as returned in entries.
type Client interface {
	List(ctx context.Context, remotePath string) ([]content.Entry, error)
	Download(ctx context.Context, locator, targetDir string) (string, error)
}

// maxSuffix bounds the collision search in CreateUnique.
const maxSuffix = 10000

// CreateUnique creates a new file for name inside dir. On collision a
// numeric suffix is appended to the stem: clip.mp4, clip_1.mp4, clip_2.mp4.
func CreateUnique(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download dir: %w", err)
	}
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxSuffix; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		f, err := os.OpenFile(filepath.Join(dir, candidate), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no free name for %s in %s", name, dir)
}

// writeUnique copies r into a new uniquely named file and returns its path.
// A partially written file is removed.
func writeUnique(ctx context.Context, r io.Reader, dir, name string) (string, error) {
	f, err := CreateUnique(dir, name)
	if err != nil {
		return "", err
	}
	target := f.Name()

	_, err = io.Copy(f, ctxReader{ctx: ctx, r: r})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(target)
		return "", err
	}
	return target, nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// Base returns the final element of a remote locator.
func Base(locator string) string {
	return path.Base(locator)
}
