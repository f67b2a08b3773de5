package archive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/camdash/camdash/internal/content"
)

// DirClient serves the clip archive from a local directory, such as a synced
// copy or a network mount. Locators are slash paths below the directory.
type DirClient struct {
	dir    string
	logger *slog.Logger
}

// NewDirClient creates a client rooted at dir.
func NewDirClient(dir string, logger *slog.Logger) *DirClient {
	return &DirClient{dir: dir, logger: logger}
}

func (c *DirClient) resolve(locator string) string {
	clean := path.Clean("/" + locator)
	return filepath.Join(c.dir, filepath.FromSlash(clean))
}

// List returns the entries below remotePath, hidden names excluded.
func (c *DirClient) List(ctx context.Context, remotePath string) ([]content.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := os.ReadDir(c.resolve(remotePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("list %s: %w", remotePath, ErrNotFound)
		}
		return nil, fmt.Errorf("list %s: %w", remotePath, err)
	}

	base := path.Clean("/" + remotePath)
	entries := make([]content.Entry, 0, len(items))
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		locator := path.Join(base, name)
		if item.IsDir() {
			entries = append(entries, content.NewFolder(name, locator))
		} else {
			entries = append(entries, content.NewLeaf(name, locator))
		}
	}
	return entries, nil
}

// Download copies locator into a uniquely named file inside targetDir.
func (c *DirClient) Download(ctx context.Context, locator, targetDir string) (string, error) {
	src, err := os.Open(c.resolve(locator))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("download %s: %w", locator, ErrNotFound)
		}
		return "", fmt.Errorf("download %s: %w", locator, err)
	}
	defer src.Close()

	target, err := writeUnique(ctx, src, targetDir, path.Base(locator))
	if err != nil {
		return "", fmt.Errorf("download %s: %w", locator, err)
	}
	c.logger.Info("copied clip", "path", locator, "target", target)
	return target, nil
}

var _ Client = (*DirClient)(nil)
