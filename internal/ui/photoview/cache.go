package photoview

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheDirName = "photos"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache keeps scaled PNG copies of photos on disk so revisiting a slideshow
// skips decoding full size camera images.
type Cache struct {
	dir    string
	maxAge time.Duration
}

// NewCache creates the cache under baseDir (the user cache dir when empty)
// and prunes stale entries in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(userCache, "camdash")
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir, maxAge: cacheMaxAge}
	go c.prune()
	return c, nil
}

// cacheKey covers the source's mtime so an edited photo is re-scaled.
func cacheKey(path string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", path, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) file(path string, width, height int) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	return filepath.Join(c.dir, cacheKey(path, info.ModTime(), width, height)+".png"), true
}

// Get returns cached PNG data, or nil.
func (c *Cache) Get(path string, width, height int) []byte {
	if c == nil {
		return nil
	}
	file, ok := c.file(path, width, height)
	if !ok {
		return nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(file, now, now) //nolint:errcheck // keeps hot entries from pruning
	return data
}

// Put stores PNG data for path at the given pixel size.
func (c *Cache) Put(path string, width, height int, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}
	file, ok := c.file(path, width, height)
	if !ok {
		return nil
	}
	return os.WriteFile(file, data, 0o600)
}

func (c *Cache) prune() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-c.maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
