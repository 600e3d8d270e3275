package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	miniogo "github.com/minio/minio-go/v7"

	"event-calendar-webhook/internal/event/repository"
)

// Put uploads the file under ics/YYYY-MM-DD/<uuid>-<name> and returns its
// public URL.
func (s *implFileStore) Put(ctx context.Context, opt repository.PutFileOptions) (string, error) {
	key := objectKey(opt.CreatedAt, uuid.NewString(), opt.Name)

	_, err := s.client.PutObject(ctx, s.bucket, key,
		strings.NewReader(opt.Content), int64(len(opt.Content)),
		miniogo.PutObjectOptions{
			ContentType:        opt.ContentType,
			ContentDisposition: fmt.Sprintf("attachment; filename=%q", opt.Name),
		},
	)
	if err != nil {
		s.l.Errorf(ctx, "event/repository/minio.Put PutObject: %v", err)
		return "", fmt.Errorf("%w: %w", repository.ErrFailedToPut, err)
	}

	publicURL := s.objectURL(key)
	s.l.Debugf(ctx, "event/repository/minio.Put: %s -> %s", opt.Name, publicURL)
	return publicURL, nil
}

func objectKey(createdAt time.Time, id, name string) string {
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return fmt.Sprintf("%s/%s/%s-%s", keyPrefix, createdAt.UTC().Format("2006-01-02"), id, name)
}

// objectURL returns the public URL for key. Endpoints without a scheme get
// one matching UseSSL.
func (s *implFileStore) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	path := s.bucket + "/" + strings.Join(segments, "/")

	if strings.Contains(s.publicEndpoint, "://") {
		return s.publicEndpoint + "/" + path
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return scheme + "://" + s.publicEndpoint + "/" + path
}
