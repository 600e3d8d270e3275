package gdrive

import "errors"

var ErrMissingName = errors.New("gdrive: file name is required")

// UploadRequest describes a file to create.
type UploadRequest struct {
	Name     string
	Content  string
	MimeType string
	FolderID string // optional parent folder
}

// File is the subset of Drive file metadata callers need.
type File struct {
	ID          string
	Name        string
	DownloadURL string
	ViewURL     string
}
