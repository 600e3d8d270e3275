package drive

import (
	"context"
	"errors"
	"strings"
	"testing"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/pkg/gdrive"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockClient struct {
	uploadErr error
	shareErr  error
	deleteErr error
	uploads   []gdrive.UploadRequest
	shared    []string
	deleted   []string
}

func (m *mockClient) Upload(ctx context.Context, req gdrive.UploadRequest) (*gdrive.File, error) {
	m.uploads = append(m.uploads, req)
	if m.uploadErr != nil {
		return nil, m.uploadErr
	}
	return &gdrive.File{ID: "f1", Name: req.Name, DownloadURL: "https://drive.google.com/uc?id=f1&export=download"}, nil
}

func (m *mockClient) ShareWithAnyone(ctx context.Context, fileID string) error {
	m.shared = append(m.shared, fileID)
	return m.shareErr
}

func (m *mockClient) Delete(ctx context.Context, fileID string) error {
	m.deleted = append(m.deleted, fileID)
	return m.deleteErr
}

func TestPut(t *testing.T) {
	opt := repository.PutFileOptions{Name: "Standup.ics", Content: "BEGIN:VCALENDAR", ContentType: "text/calendar"}

	t.Run("Success", func(t *testing.T) {
		c := &mockClient{}
		url, err := New(c, "folder-9", &mockLogger{}).Put(context.Background(), opt)
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if url != "https://drive.google.com/uc?id=f1&export=download" {
			t.Errorf("url = %q", url)
		}
		if len(c.uploads) != 1 {
			t.Fatalf("uploads = %d", len(c.uploads))
		}
		got := c.uploads[0]
		if got.Name != opt.Name || got.Content != opt.Content || got.MimeType != "text/plain" || got.FolderID != "folder-9" {
			t.Errorf("unexpected upload %+v", got)
		}
		if len(c.shared) != 1 || c.shared[0] != "f1" {
			t.Errorf("shared = %v", c.shared)
		}
	})

	t.Run("Upload fails", func(t *testing.T) {
		c := &mockClient{uploadErr: errors.New("quota")}
		_, err := New(c, "", &mockLogger{}).Put(context.Background(), opt)
		if !errors.Is(err, repository.ErrFailedToPut) {
			t.Errorf("expected ErrFailedToPut, got %v", err)
		}
		if len(c.shared) != 0 {
			t.Error("must not share after failed upload")
		}
	})

	t.Run("Share fails", func(t *testing.T) {
		c := &mockClient{shareErr: errors.New("denied")}
		url, err := New(c, "", &mockLogger{}).Put(context.Background(), opt)
		if !errors.Is(err, repository.ErrFailedToPut) || url != "" {
			t.Errorf("expected ErrFailedToPut and no url, got %q %v", url, err)
		}
		if len(c.deleted) != 1 || c.deleted[0] != "f1" {
			t.Errorf("unshared upload must be deleted, deleted = %v", c.deleted)
		}
	})

	t.Run("Share and delete fail", func(t *testing.T) {
		c := &mockClient{shareErr: errors.New("denied"), deleteErr: errors.New("gone")}
		_, err := New(c, "", &mockLogger{}).Put(context.Background(), opt)
		if !errors.Is(err, repository.ErrFailedToPut) || !strings.Contains(err.Error(), "denied") {
			t.Errorf("expected the share error, got %v", err)
		}
	})

	t.Run("Success keeps the file", func(t *testing.T) {
		c := &mockClient{}
		if _, err := New(c, "", &mockLogger{}).Put(context.Background(), opt); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if len(c.deleted) != 0 {
			t.Errorf("deleted = %v", c.deleted)
		}
	})
}
