package usecase

import (
	"context"
	"fmt"
	"time"

	"event-calendar-webhook/internal/event"
	"event-calendar-webhook/internal/event/repository"
	"event-calendar-webhook/internal/model"
)

// Submit runs one submission through extraction, both encoders, the file
// store and the log sink, strictly in that order.
func (uc *implUseCase) Submit(ctx context.Context, sub model.Submission) (event.SubmitOutput, error) {
	if sub.ReceivedAt.IsZero() {
		sub.ReceivedAt = uc.clock.Now()
	}

	prompt := BuildPrompt(sub.Text, sub.ReceivedAt.Format(time.RFC3339), sub.Email)

	extraction, err := uc.extractor.Extract(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Submit.Extract: %v", err)
		return event.SubmitOutput{}, fmt.Errorf("%w: %w", event.ErrLLMRequest, err)
	}
	ev := extraction.Event

	calendarURL, err := event.CalendarLink(ev)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Submit.CalendarLink: %v", err)
		return event.SubmitOutput{}, err
	}

	file, err := event.CalendarFile(ev, sub.ReceivedAt)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Submit.CalendarFile: %v", err)
		return event.SubmitOutput{}, err
	}

	icsURL, err := uc.files.Put(ctx, repository.PutFileOptions{
		Name:        file.Name,
		Content:     file.Content,
		ContentType: file.ContentType,
		CreatedAt:   sub.ReceivedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Submit.Put: %v", err)
		return event.SubmitOutput{}, fmt.Errorf("%w: %w", event.ErrStoreFile, err)
	}

	if err := uc.sink.Append(ctx, model.NewLogRow(sub, ev, calendarURL, icsURL)); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Submit.Append: %v", err)
		return event.SubmitOutput{}, fmt.Errorf("%w: %w", event.ErrAppendLog, err)
	}

	uc.l.Infof(ctx, "event.usecase.Submit: %q on %s %s (source=%s)", ev.Title, ev.Date, ev.Time, extraction.Source)

	return event.SubmitOutput{
		CalendarURL: calendarURL,
		ICSURL:      icsURL,
		Parsed:      ev,
		Source:      extraction.Source,
	}, nil
}
