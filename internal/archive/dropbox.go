package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"

	"github.com/camdash/camdash/internal/content"
)

// DropboxClient reads the clip archive from a Dropbox account.
type DropboxClient struct {
	files  files.Client
	logger *slog.Logger
}

// NewDropboxClient creates a client authenticated with an access token.
func NewDropboxClient(token string, logger *slog.Logger) *DropboxClient {
	cfg := dropbox.Config{
		Token:    token,
		LogLevel: dropbox.LogOff,
	}
	return &DropboxClient{files: files.New(cfg), logger: logger}
}

// List returns the folders and files directly below remotePath.
func (c *DropboxClient) List(ctx context.Context, remotePath string) ([]content.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.files.ListFolder(files.NewListFolderArg(remotePath))
	if err != nil {
		return nil, c.listError(remotePath, err)
	}

	entries := convertMetadata(res.Entries)
	for res.HasMore {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err = c.files.ListFolderContinue(files.NewListFolderContinueArg(res.Cursor))
		if err != nil {
			return nil, c.listError(remotePath, err)
		}
		entries = append(entries, convertMetadata(res.Entries)...)
	}

	c.logger.Debug("listed remote folder", "path", remotePath, "entries", len(entries))
	return entries, nil
}

func (c *DropboxClient) listError(remotePath string, err error) error {
	var apiErr files.ListFolderAPIError
	if errors.As(err, &apiErr) && apiErr.EndpointError != nil &&
		apiErr.EndpointError.Path != nil &&
		apiErr.EndpointError.Path.Tag == files.LookupErrorNotFound {
		return fmt.Errorf("list %s: %w", remotePath, ErrNotFound)
	}
	return fmt.Errorf("list %s: %w", remotePath, err)
}

func convertMetadata(items []files.IsMetadata) []content.Entry {
	entries := make([]content.Entry, 0, len(items))
	for _, item := range items {
		switch m := item.(type) {
		case *files.FolderMetadata:
			entries = append(entries, content.NewFolder(m.Name, m.PathLower))
		case *files.FileMetadata:
			entries = append(entries, content.NewLeaf(m.Name, m.PathLower))
		}
	}
	return entries
}

// Download fetches locator into a uniquely named file inside targetDir.
func (c *DropboxClient) Download(ctx context.Context, locator, targetDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	meta, body, err := c.files.Download(files.NewDownloadArg(locator))
	if err != nil {
		return "", fmt.Errorf("download %s: %w", locator, err)
	}
	defer body.Close()

	target, err := writeUnique(ctx, body, targetDir, meta.Name)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", locator, err)
	}
	c.logger.Info("downloaded clip", "path", locator, "target", target, "size", meta.Size)
	return target, nil
}

var _ Client = (*DropboxClient)(nil)
