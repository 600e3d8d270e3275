package repository

import (
	"context"

	"event-calendar-webhook/internal/model"
)

// FileStore persists rendered calendar files and makes them publicly readable.
type FileStore interface {
	// Put stores the file and returns its public download URL.
	Put(ctx context.Context, opt PutFileOptions) (string, error)
}

// LogSink is the append-only submission log.
type LogSink interface {
	Append(ctx context.Context, row model.LogRow) error
}

// Closer is implemented by stores holding connections.
type Closer interface {
	Close() error
}
