package state

import (
	"database/sql"
	"errors"
	"os"
	"time"
)

// Download is a remote clip already copied to local disk.
type Download struct {
	Locator      string
	LocalPath    string
	Size         int64
	DownloadedAt time.Time
}

// LookupDownload returns the cached copy of locator. A record whose file has
// gone missing is dropped and reported as absent.
func (m *Manager) LookupDownload(locator string) (Download, bool, error) {
	var (
		d  Download
		at int64
	)
	err := m.db.QueryRow(`
		SELECT locator, local_path, size, downloaded_at
		FROM downloads WHERE locator = ?
	`, locator).Scan(&d.Locator, &d.LocalPath, &d.Size, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return Download{}, false, nil
	}
	if err != nil {
		return Download{}, false, err
	}
	d.DownloadedAt = time.Unix(at, 0)

	if _, err := os.Stat(d.LocalPath); err != nil {
		if _, err := m.db.Exec(`DELETE FROM downloads WHERE locator = ?`, locator); err != nil {
			return Download{}, false, err
		}
		return Download{}, false, nil
	}
	return d, true, nil
}

// RecordDownload stores or replaces the cached copy of d.Locator.
func (m *Manager) RecordDownload(d Download) error {
	if d.DownloadedAt.IsZero() {
		d.DownloadedAt = time.Now()
	}
	_, err := m.db.Exec(`
		INSERT INTO downloads (locator, local_path, size, downloaded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(locator) DO UPDATE SET
			local_path = excluded.local_path,
			size = excluded.size,
			downloaded_at = excluded.downloaded_at
	`, d.Locator, d.LocalPath, d.Size, d.DownloadedAt.Unix())
	return err
}

// DownloadStats summarises the cache.
func (m *Manager) DownloadStats() (count int, totalSize int64, err error) {
	err = m.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(size), 0) FROM downloads`).Scan(&count, &totalSize)
	return count, totalSize, err
}
