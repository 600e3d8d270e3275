package model_test

import (
	"errors"
	"testing"
	"time"

	"event-calendar-webhook/internal/model"
)

func validEvent() model.ExtractedEvent {
	return model.ExtractedEvent{
		Title:       "Standup",
		Date:        "2024-06-01",
		Time:        "09:00",
		Attendees:   []string{"a@example.com"},
		Description: "Daily sync",
		Recurrence:  model.RecurrenceWeekly,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *model.ExtractedEvent)
		wantErr error
	}{
		{name: "valid", mutate: func(e *model.ExtractedEvent) {}},
		{name: "blank title", mutate: func(e *model.ExtractedEvent) { e.Title = "  " }, wantErr: model.ErrEmptyTitle},
		{name: "slashed date", mutate: func(e *model.ExtractedEvent) { e.Date = "2024/06/01" }, wantErr: model.ErrInvalidDate},
		{name: "impossible date", mutate: func(e *model.ExtractedEvent) { e.Date = "2024-02-30" }, wantErr: model.ErrInvalidDate},
		{name: "missing date", mutate: func(e *model.ExtractedEvent) { e.Date = "" }, wantErr: model.ErrInvalidDate},
		{name: "twelve hour time", mutate: func(e *model.ExtractedEvent) { e.Time = "9:00 AM" }, wantErr: model.ErrInvalidTime},
		{name: "single digit hour", mutate: func(e *model.ExtractedEvent) { e.Time = "9:00" }, wantErr: model.ErrInvalidTime},
		{name: "hour 24", mutate: func(e *model.ExtractedEvent) { e.Time = "24:00" }, wantErr: model.ErrInvalidTime},
		{name: "unknown recurrence", mutate: func(e *model.ExtractedEvent) { e.Recurrence = "FORTNIGHTLY" }, wantErr: model.ErrInvalidRecurrence},
		{name: "hourly not allowed", mutate: func(e *model.ExtractedEvent) { e.Recurrence = "HOURLY" }, wantErr: model.ErrInvalidRecurrence},
		{name: "empty recurrence", mutate: func(e *model.ExtractedEvent) { e.Recurrence = "" }, wantErr: model.ErrInvalidRecurrence},
		{name: "none recurrence", mutate: func(e *model.ExtractedEvent) { e.Recurrence = model.RecurrenceNone }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecurrenceRRule(t *testing.T) {
	if got := model.RecurrenceNone.RRule(); got != "" {
		t.Errorf("expected empty rule for NONE, got %q", got)
	}
	if got := model.RecurrenceMonthly.RRule(); got != "FREQ=MONTHLY" {
		t.Errorf("expected FREQ=MONTHLY, got %q", got)
	}
	for _, r := range model.Recurrences {
		if !r.Valid() {
			t.Errorf("listed recurrence %q is not valid", r)
		}
		if !r.IsNone() && r.RRule() != "FREQ="+string(r) {
			t.Errorf("RRule() for %q = %q", r, r.RRule())
		}
	}
}

func TestRecurrenceValid(t *testing.T) {
	tests := []struct {
		code  model.Recurrence
		valid bool
	}{
		{"NONE", true},
		{"DAILY", true},
		{"YEARLY", true},
		{"HOURLY", false},
		{"MINUTELY", false},
		{"SECONDLY", false},
		{"weekly", false},
		{"BIWEEKLY", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := tt.code.Valid(); got != tt.valid {
			t.Errorf("Recurrence(%q).Valid() = %v, want %v", tt.code, got, tt.valid)
		}
		if !tt.valid && tt.code.RRule() != "" {
			t.Errorf("Recurrence(%q).RRule() = %q, want empty", tt.code, tt.code.RRule())
		}
	}
}

func TestStart(t *testing.T) {
	e := validEvent()
	got, err := e.Start()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	e.Time = "nine"
	if _, err := e.Start(); err == nil {
		t.Error("expected error for malformed time")
	}
}

func TestFallbackEvent(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	// 2024-01-31 20:00 UTC is already 2024-02-01 in UTC+7.
	today := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC).In(loc)

	got := model.FallbackEvent(today)
	want := model.ExtractedEvent{
		Title:       "Meeting",
		Date:        "2024-02-01",
		Time:        "09:00",
		Attendees:   []string{},
		Description: "Auto-generated meeting",
		Recurrence:  model.RecurrenceNone,
	}

	if got.Title != want.Title || got.Date != want.Date || got.Time != want.Time ||
		got.Description != want.Description || got.Recurrence != want.Recurrence {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got.Attendees == nil || len(got.Attendees) != 0 {
		t.Errorf("expected empty non-nil attendees, got %#v", got.Attendees)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("fallback must be valid: %v", err)
	}
}

func TestLogRowValues(t *testing.T) {
	sub := model.Submission{
		Text:       "standup saturday 9am",
		Email:      "me@example.com",
		ReceivedAt: time.Date(2024, 5, 30, 10, 0, 0, 0, time.UTC),
	}
	row := model.NewLogRow(sub, validEvent(), "https://cal", "https://ics")

	got := row.Values()
	want := []any{
		"2024-05-30T10:00:00Z",
		"standup saturday 9am",
		"me@example.com",
		"Standup",
		"2024-06-01",
		"09:00",
		"Daily sync",
		"WEEKLY",
		"https://cal",
		"https://ics",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
