package archive

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/camdash/camdash/internal/content"
)

// Mock is an in-memory Client for tests.
type Mock struct {
	mu            sync.Mutex
	listings      map[string][]content.Entry
	listErrs      map[string]error
	downloadErrs  map[string]error
	listCalls     []string
	downloadCalls []string
}

// NewMock creates an empty mock.
func NewMock() *Mock {
	return &Mock{
		listings:     make(map[string][]content.Entry),
		listErrs:     make(map[string]error),
		downloadErrs: make(map[string]error),
	}
}

// SetListing sets the entries returned for remotePath.
func (m *Mock) SetListing(remotePath string, entries ...content.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listings[remotePath] = entries
	delete(m.listErrs, remotePath)
}

// SetListError makes List fail for remotePath.
func (m *Mock) SetListError(remotePath string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErrs[remotePath] = err
}

// SetDownloadError makes Download fail for locator.
func (m *Mock) SetDownloadError(locator string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloadErrs[locator] = err
}

func (m *Mock) List(_ context.Context, remotePath string) ([]content.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls = append(m.listCalls, remotePath)
	if err := m.listErrs[remotePath]; err != nil {
		return nil, err
	}
	entries, ok := m.listings[remotePath]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", remotePath, ErrNotFound)
	}
	return append([]content.Entry(nil), entries...), nil
}

// Download returns targetDir joined with the locator's base name without
// touching the filesystem.
func (m *Mock) Download(_ context.Context, locator, targetDir string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloadCalls = append(m.downloadCalls, locator)
	if err := m.downloadErrs[locator]; err != nil {
		return "", err
	}
	return path.Join(targetDir, path.Base(locator)), nil
}

// ListCalls returns the paths passed to List.
func (m *Mock) ListCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.listCalls...)
}

// DownloadCalls returns the locators passed to Download.
func (m *Mock) DownloadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.downloadCalls...)
}

var _ Client = (*Mock)(nil)
