package event

import (
	"context"

	"event-calendar-webhook/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit turns a free-text submission into a calendar link, a stored
	// .ics file and a log row.
	Submit(ctx context.Context, sub model.Submission) (SubmitOutput, error)
}
