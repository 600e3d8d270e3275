package http

import (
	"errors"
	"fmt"

	"event-calendar-webhook/internal/event"
)

// mapError names the failed stage. Every use case error is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrLLMRequest):
		return fmt.Errorf("extraction: %w", err)
	case errors.Is(err, event.ErrStoreFile):
		return fmt.Errorf("file storage: %w", err)
	case errors.Is(err, event.ErrAppendLog):
		return fmt.Errorf("event log: %w", err)
	default:
		return err
	}
}
