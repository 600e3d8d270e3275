package repository

import "time"

// PutFileOptions holds the file to store.
type PutFileOptions struct {
	Name        string
	Content     string
	ContentType string
	CreatedAt   time.Time // used to partition object keys
}
