package drive

import (
	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/gdrive"
)

func gdriveRequest(opt repository.PutFileOptions, folderID string) gdrive.UploadRequest {
	return gdrive.UploadRequest{
		Name:     opt.Name,
		Content:  opt.Content,
		MimeType: uploadMimeType,
		FolderID: folderID,
	}
}
