package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestLookupDownload_Empty(t *testing.T) {
	m := setupTestManager(t)

	_, ok, err := m.LookupDownload("/motion_images/a.mp4")
	if err != nil {
		t.Fatalf("LookupDownload failed: %v", err)
	}
	if ok {
		t.Error("expected no cached download on empty db")
	}
}

func TestRecordAndLookupDownload(t *testing.T) {
	m := setupTestManager(t)
	local := filepath.Join(t.TempDir(), "a.mp4")
	if err := os.WriteFile(local, []byte("clip"), 0o600); err != nil {
		t.Fatal(err)
	}

	at := time.Unix(1754000000, 0)
	if err := m.RecordDownload(Download{Locator: "/m/a.mp4", LocalPath: local, Size: 4, DownloadedAt: at}); err != nil {
		t.Fatalf("RecordDownload failed: %v", err)
	}

	d, ok, err := m.LookupDownload("/m/a.mp4")
	if err != nil || !ok {
		t.Fatalf("LookupDownload = %+v, %v, %v", d, ok, err)
	}
	if d.LocalPath != local || d.Size != 4 || !d.DownloadedAt.Equal(at) {
		t.Errorf("LookupDownload = %+v", d)
	}

	count, total, err := m.DownloadStats()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 || total != 4 {
		t.Errorf("DownloadStats = %d, %d", count, total)
	}
}

func TestRecordDownload_Replaces(t *testing.T) {
	m := setupTestManager(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "a.mp4")
	second := filepath.Join(dir, "a_1.mp4")
	for _, p := range []string{first, second} {
		if err := os.WriteFile(p, nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	_ = m.RecordDownload(Download{Locator: "/m/a.mp4", LocalPath: first})
	_ = m.RecordDownload(Download{Locator: "/m/a.mp4", LocalPath: second})

	d, ok, err := m.LookupDownload("/m/a.mp4")
	if err != nil || !ok {
		t.Fatalf("LookupDownload = %v, %v", ok, err)
	}
	if d.LocalPath != second {
		t.Errorf("LocalPath = %q, want %q", d.LocalPath, second)
	}
	if count, _, _ := m.DownloadStats(); count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestLookupDownload_MissingFileIsDropped(t *testing.T) {
	m := setupTestManager(t)
	if err := m.RecordDownload(Download{Locator: "/m/gone.mp4", LocalPath: "/nonexistent/gone.mp4"}); err != nil {
		t.Fatal(err)
	}

	_, ok, err := m.LookupDownload("/m/gone.mp4")
	if err != nil {
		t.Fatalf("LookupDownload failed: %v", err)
	}
	if ok {
		t.Error("expected missing file to be reported absent")
	}
	if count, _, _ := m.DownloadStats(); count != 0 {
		t.Errorf("stale record kept, count = %d", count)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := setupTestManager(t)
	if err := initSchema(m.DB()); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
	var version int
	if err := m.DB().QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestOpenPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "camdash.db")
	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	defer m.Close()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}
