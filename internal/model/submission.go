package model

import "time"

// Submission is one inbound request to the webhook.
type Submission struct {
	Text       string
	Email      string
	ReceivedAt time.Time
}

// LogRow is the row appended to the event log for each processed submission.
type LogRow struct {
	ReceivedAt  time.Time
	Text        string
	Email       string
	Title       string
	Date        string
	Time        string
	Description string
	Recurrence  Recurrence
	CalendarURL string
	ICSURL      string
}

// NewLogRow combines a submission, its event and the derived links.
func NewLogRow(sub Submission, ev ExtractedEvent, calendarURL, icsURL string) LogRow {
	return LogRow{
		ReceivedAt:  sub.ReceivedAt,
		Text:        sub.Text,
		Email:       sub.Email,
		Title:       ev.Title,
		Date:        ev.Date,
		Time:        ev.Time,
		Description: ev.Description,
		Recurrence:  ev.Recurrence,
		CalendarURL: calendarURL,
		ICSURL:      icsURL,
	}
}

// Values returns the row cells in column order.
func (r LogRow) Values() []any {
	return []any{
		r.ReceivedAt.Format(time.RFC3339),
		r.Text,
		r.Email,
		r.Title,
		r.Date,
		r.Time,
		r.Description,
		string(r.Recurrence),
		r.CalendarURL,
		r.ICSURL,
	}
}
