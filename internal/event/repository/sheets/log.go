package sheets

import (
	"context"
	"fmt"

	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/internal/model"
)

// Append writes row after the last row of the sheet.
func (s *implLogSink) Append(ctx context.Context, row model.LogRow) error {
	res, err := s.client.AppendRow(ctx, s.spreadsheetID, s.sheetName, row.Values())
	if err != nil {
		s.l.Errorf(ctx, "event/repository/sheets.Append: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrFailedToAppend, err)
	}
	s.l.Debugf(ctx, "event/repository/sheets.Append: %s", res.UpdatedRange)
	return nil
}
