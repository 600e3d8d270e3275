package event

import "event-calendar-webhook/internal/model"

// --- UseCase Outputs ---

type SubmitOutput struct {
	CalendarURL string
	ICSURL      string
	Parsed      model.ExtractedEvent
	Source      model.ExtractionSource
}

// CalendarFileContent is a rendered .ics document ready to be stored.
type CalendarFileContent struct {
	Name        string
	Content     string
	ContentType string
}
