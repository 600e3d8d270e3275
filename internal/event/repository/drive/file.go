package drive

import (
	"context"
	"fmt"

	"event-calendar-webhook/internal/event/repository"
)

// uploadMimeType keeps Drive from converting the calendar into a Google format.
const uploadMimeType = "text/plain"

// Put uploads the file and shares it with anyone holding the link.
func (s *implFileStore) Put(ctx context.Context, opt repository.PutFileOptions) (string, error) {
	f, err := s.client.Upload(ctx, gdriveRequest(opt, s.folderID))
	if err != nil {
		s.l.Errorf(ctx, "event/repository/drive.Put Upload: %v", err)
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToPut, err)
	}

	if err := s.client.ShareWithAnyone(ctx, f.ID); err != nil {
		s.l.Errorf(ctx, "event/repository/drive.Put ShareWithAnyone: %v", err)
		// An unshared upload has no reader; drop it.
		if delErr := s.client.Delete(ctx, f.ID); delErr != nil {
			s.l.Warnf(ctx, "event/repository/drive.Put Delete %s: %v", f.ID, delErr)
		}
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToPut, err)
	}

	s.l.Debugf(ctx, "event/repository/drive.Put: %s -> %s", opt.Name, f.ID)
	return f.DownloadURL, nil
}
