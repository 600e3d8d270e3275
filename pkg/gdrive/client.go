package gdrive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Scope grants access to files created by this application.
const Scope = drive.DriveFileScope

const downloadURLFormat = "https://drive.google.com/uc?id=%s&export=download"

// Client wraps the Google Drive API service.
type Client struct {
	service *drive.Service
}

// NewClient creates a Drive client. Callers supply credentials via opts.
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Upload creates a file in Drive with the given content.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*File, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}

	meta := &drive.File{Name: req.Name, MimeType: req.MimeType}
	if req.FolderID != "" {
		meta.Parents = []string{req.FolderID}
	}

	created, err := c.service.Files.Create(meta).
		Media(strings.NewReader(req.Content), googleapi.ContentType(req.MimeType)).
		Fields("id", "name", "webContentLink", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &File{
		ID:          created.Id,
		Name:        created.Name,
		DownloadURL: downloadURL(created),
		ViewURL:     created.WebViewLink,
	}, nil
}

// ShareWithAnyone grants read access to anyone with the link.
func (c *Client) ShareWithAnyone(ctx context.Context, fileID string) error {
	perm := &drive.Permission{Type: "anyone", Role: "reader"}
	if _, err := c.service.Permissions.Create(fileID, perm).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to share file %s: %w", fileID, err)
	}
	return nil
}

// Delete removes a file permanently, bypassing the trash.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	if err := c.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}

func downloadURL(f *drive.File) string {
	if f.WebContentLink != "" {
		return f.WebContentLink
	}
	return fmt.Sprintf(downloadURLFormat, f.Id)
}
