package postgre

import (
	"context"
	"fmt"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/internal/model"
)

// Append inserts row into event_log.
func (s *implLogSink) Append(ctx context.Context, row model.LogRow) error {
	_, err := s.db.ExecContext(ctx, insertRowQuery,
		row.ReceivedAt,
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
		s.l.Errorf(ctx, "event/repository/postgre.Append: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
	}
	return nil
}
