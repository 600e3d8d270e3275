package drive

import (
	"context"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/gdrive"
	"event-calendar-webhook/pkg/log"
)

// Client is the subset of gdrive.Client used by the store.
type Client interface {
	Upload(ctx context.Context, req gdrive.UploadRequest) (*gdrive.File, error)
	ShareWithAnyone(ctx context.Context, fileID string) error
	Delete(ctx context.Context, fileID string) error
}

type implFileStore struct {
	client   Client
	folderID string
	l        log.Logger
}

// New creates a Google Drive backed FileStore. folderID may be empty.
func New(client Client, folderID string, l log.Logger) repository.FileStore {
	if client == nil {
		panic("event/repository/drive: client is required")
	}
	return &implFileStore{client: client, folderID: folderID, l: l}
}
