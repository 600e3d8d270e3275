package sqlite

import (
	"context"
	"fmt"
	"time"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/internal/model"
)

const insertRowQuery = `
INSERT INTO event_log (received_at, text, email, title, event_date, event_time, description, recurrence, calendar_url, ics_url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Append inserts row into event_log.
func (s *implLogSink) Append(ctx context.Context, row model.LogRow) error {
	_, err := s.db.ExecContext(ctx, insertRowQuery,
		row.ReceivedAt.UTC().Format(time.RFC3339),
		row.Text,
		row.Email,
		row.Title,
		row.Date,
		row.Time,
		row.Description,
		string(row.Recurrence),
		row.CalendarURL,
		row.ICSURL,
	)
	if err != nil {
		s.l.Errorf(ctx, "event/repository/sqlite.Append: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
	}
	return nil
}
