package http

import (
	"errors"
	"time"

	"event-calendar-webhook/internal/event"
	"event-calendar-webhook/internal/model"
)

// --- Request DTOs ---

// maxEmailLen is the longest address RFC 5321 allows.
const maxEmailLen = 320

var errEmailTooLong = errors.New("email must be at most 320 characters")

type submitReq struct {
	Text  string `json:"text"  form:"text"`
	Email string `json:"email" form:"email"`
}

func (r submitReq) validate() error {
	if len(r.Email) > maxEmailLen {
		return errEmailTooLong
	}
	return nil
}

func (r submitReq) toSubmission(receivedAt time.Time) model.Submission {
	return model.Submission{
		Text:       r.Text,
		Email:      r.Email,
		ReceivedAt: receivedAt,
	}
}

// --- Response DTOs ---

type parsedResp struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Attendees   []string `json:"attendees"`
	Description string   `json:"description"`
	Recurrence  string   `json:"recurrence"`
}

type submitResp struct {
	CalendarURL string     `json:"calendarUrl"`
	ICSURL      string     `json:"icsUrl"`
	Parsed      parsedResp `json:"parsed"`
}

func (h *handler) newSubmitResp(out event.SubmitOutput) submitResp {
	attendees := out.Parsed.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return submitResp{
		CalendarURL: out.CalendarURL,
		ICSURL:      out.ICSURL,
		Parsed: parsedResp{
			Title:       out.Parsed.Title,
			Date:        out.Parsed.Date,
			Time:        out.Parsed.Time,
			Attendees:   attendees,
			Description: out.Parsed.Description,
			Recurrence:  string(out.Parsed.Recurrence),
		},
	}
}
