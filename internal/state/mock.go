package state

import "sync"

// Mock is an in-memory Interface for tests. It does not check that files
// exist.
type Mock struct {
	mu        sync.Mutex
	downloads map[string]Download
	err       error
}

func NewMock() *Mock {
	return &Mock{downloads: make(map[string]Download)}
}

// SetError makes every call fail with err.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Mock) LookupDownload(locator string) (Download, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Download{}, false, m.err
	}
	d, ok := m.downloads[locator]
	return d, ok, nil
}

func (m *Mock) RecordDownload(d Download) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.downloads[d.Locator] = d
	return nil
}

func (m *Mock) DownloadStats() (int, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total int64
	for _, d := range m.downloads {
		total += d.Size
	}
	return len(m.downloads), total, m.err
}

func (m *Mock) Close() error { return nil }

var _ Interface = (*Mock)(nil)
