package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Wire formats of ExtractedEvent.Date and ExtractedEvent.Time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Recurrence is a frequency code usable in an RRULE FREQ part, or NONE.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceDaily   Recurrence = "DAILY"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
	RecurrenceYearly  Recurrence = "YEARLY"
)

// Recurrences lists every accepted code in the order shown to the model.
var Recurrences = []Recurrence{
	RecurrenceNone,
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceMonthly,
	RecurrenceYearly,
}

// Valid reports whether r is NONE or an RRULE frequency of a day or longer.
func (r Recurrence) Valid() bool {
	if r == RecurrenceNone {
		return true
	}
	_, err := r.freq()
	return err == nil
}

// freq maps r to its rrule frequency. Sub-daily frequencies are rejected.
func (r Recurrence) freq() (rrule.Frequency, error) {
	f, err := rrule.StrToFreq(string(r))
	if err != nil {
		return 0, err
	}
	if f > rrule.DAILY {
		return 0, fmt.Errorf("frequency %s is shorter than a day", f)
	}
	return f, nil
}

// IsNone reports whether the event does not repeat.
func (r Recurrence) IsNone() bool {
	return r == RecurrenceNone
}

// RRule returns the RRULE value for r, e.g. "FREQ=WEEKLY". Empty for NONE
// and for codes that are not valid.
func (r Recurrence) RRule() string {
	if r.IsNone() {
		return ""
	}
	f, err := r.freq()
	if err != nil {
		return ""
	}
	opt := rrule.ROption{Freq: f}
	return opt.RRuleString()
}

var (
	ErrEmptyTitle        = errors.New("title is empty")
	ErrInvalidDate       = errors.New("date is not YYYY-MM-DD")
	ErrInvalidTime       = errors.New("time is not HH:MM")
	ErrInvalidRecurrence = errors.New("recurrence is not a known code")
)

// ExtractedEvent is the structured record derived from one submission.
type ExtractedEvent struct {
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Attendees   []string   `json:"attendees"`
	Description string     `json:"description"`
	Recurrence  Recurrence `json:"recurrence"`
}

// Validate checks every field rule. It never mutates e.
func (e ExtractedEvent) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, e.Date)
	}
	if len(e.Time) != len(TimeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTime, e.Time)
	}
	if _, err := time.Parse(TimeLayout, e.Time); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, e.Time)
	}
	if !e.Recurrence.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurrence, e.Recurrence)
	}
	return nil
}

// Start returns the event's wall-clock start. The result is in UTC and
// carries no zone meaning: arithmetic on it rolls over days, months and
// years without DST gaps.
func (e ExtractedEvent) Start() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event start %q %q: %w", e.Date, e.Time, err)
	}
	return t, nil
}

// FallbackEvent returns the record substituted when the model reply cannot
// be used. today is formatted in its own location.
func FallbackEvent(today time.Time) ExtractedEvent {
	return ExtractedEvent{
		Title:       "Meeting",
		Date:        today.Format(DateLayout),
		Time:        "09:00",
		Attendees:   []string{},
		Description: "Auto-generated meeting",
		Recurrence:  RecurrenceNone,
	}
}

// ExtractionSource tells where an Extraction's event came from.
type ExtractionSource string

const (
	SourceModel    ExtractionSource = "model"
	SourceFallback ExtractionSource = "fallback"
)

// Extraction is the result of asking the model for an event: either a fully
// valid parsed record or the fallback record, never a mix.
type Extraction struct {
	Event  ExtractedEvent
	Source ExtractionSource
	Reason string // why the fallback was used; empty for SourceModel
}

// IsFallback reports whether the fallback record was substituted.
func (x Extraction) IsFallback() bool {
	return x.Source == SourceFallback
}
