package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	LookupDownload(locator string) (Download, bool, error)
	RecordDownload(d Download) error
	DownloadStats() (count int, totalSize int64, err error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
