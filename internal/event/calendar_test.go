package event_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"event-calendar-webhook/internal/event"
	"event-calendar-webhook/internal/model"
)

var stamp = time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)

func standup() model.ExtractedEvent {
	return model.ExtractedEvent{
		Title:       "Standup",
		Date:        "2024-06-01",
		Time:        "09:00",
		Attendees:   []string{},
		Description: "Daily sync",
		Recurrence:  model.RecurrenceWeekly,
	}
}

func parseLink(t *testing.T, link string) url.Values {
	t.Helper()
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	return u.Query()
}

func vevent(t *testing.T, content string) []string {
	t.Helper()
	if !strings.HasSuffix(content, "\r\n") {
		t.Fatalf("content does not end with CRLF: %q", content)
	}
	lines := strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")
	if lines[0] != "BEGIN:VCALENDAR" || lines[len(lines)-1] != "END:VCALENDAR" {
		t.Fatalf("missing VCALENDAR envelope: %q", content)
	}

	begin, end := -1, -1
	for i, l := range lines {
		switch l {
		case "BEGIN:VEVENT":
			begin = i
		case "END:VEVENT":
			end = i
		case "":
			t.Errorf("empty line at %d", i)
		}
	}
	if begin < 0 || end < begin {
		t.Fatalf("missing VEVENT block: %q", content)
	}
	return lines[begin+1 : end]
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestCalendarLink(t *testing.T) {
	t.Run("No recurrence", func(t *testing.T) {
		ev := standup()
		ev.Recurrence = model.RecurrenceNone

		link, err := event.CalendarLink(ev)
		if err != nil {
			t.Fatalf("CalendarLink: %v", err)
		}
		if strings.Contains(link, "recur=") {
			t.Errorf("unexpected recur param in %s", link)
		}
		if strings.Contains(link, "add=") {
			t.Errorf("unexpected add param in %s", link)
		}
		want := "https://calendar.google.com/calendar/r/eventedit?text=Standup&dates=20240601T090000/20240601T100000&details=Daily%20sync"
		if link != want {
			t.Errorf("expected\n%s\ngot\n%s", want, link)
		}
	})

	t.Run("Weekly recurrence", func(t *testing.T) {
		link, err := event.CalendarLink(standup())
		if err != nil {
			t.Fatalf("CalendarLink: %v", err)
		}
		if got := parseLink(t, link).Get("recur"); got != "RRULE:FREQ=WEEKLY" {
			t.Errorf("recur = %q", got)
		}
	})

	t.Run("Attendees round-trip in order", func(t *testing.T) {
		ev := standup()
		ev.Attendees = []string{"zoe@example.com", "adam+cal@example.com", "mia@example.org"}

		link, err := event.CalendarLink(ev)
		if err != nil {
			t.Fatalf("CalendarLink: %v", err)
		}
		got := strings.Split(parseLink(t, link).Get("add"), ",")
		if strings.Join(got, "|") != strings.Join(ev.Attendees, "|") {
			t.Errorf("attendees = %v, want %v", got, ev.Attendees)
		}
	})

	t.Run("Hour rollover crosses midnight", func(t *testing.T) {
		tests := []struct {
			date, time string
			want       string
		}{
			{"2024-03-10", "23:30", "20240310T233000/20240311T003000"},
			{"2024-03-31", "23:00", "20240331T230000/20240401T000000"},
			{"2024-12-31", "23:59", "20241231T235900/20250101T005900"},
			{"2024-02-28", "23:15", "20240228T231500/20240229T001500"},
		}
		for _, tt := range tests {
			ev := standup()
			ev.Date, ev.Time = tt.date, tt.time

			link, err := event.CalendarLink(ev)
			if err != nil {
				t.Fatalf("CalendarLink: %v", err)
			}
			if got := parseLink(t, link).Get("dates"); got != tt.want {
				t.Errorf("%s %s: dates = %q, want %q", tt.date, tt.time, got, tt.want)
			}
		}
	})

	t.Run("Title and details round-trip", func(t *testing.T) {
		ev := standup()
		ev.Title = "Q&A: budget = 50% + bonus?"
		ev.Description = "Room #4, café\nbring \"notes\" / slides"

		link, err := event.CalendarLink(ev)
		if err != nil {
			t.Fatalf("CalendarLink: %v", err)
		}
		q := parseLink(t, link)
		if q.Get("text") != ev.Title {
			t.Errorf("text = %q, want %q", q.Get("text"), ev.Title)
		}
		if q.Get("details") != ev.Description {
			t.Errorf("details = %q, want %q", q.Get("details"), ev.Description)
		}
	})

	t.Run("Invalid date", func(t *testing.T) {
		ev := standup()
		ev.Date = "tomorrow"
		if _, err := event.CalendarLink(ev); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCalendarFile(t *testing.T) {
	t.Run("Standup weekly", func(t *testing.T) {
		file, err := event.CalendarFile(standup(), stamp)
		if err != nil {
			t.Fatalf("CalendarFile: %v", err)
		}

		lines := vevent(t, file.Content)
		for _, want := range []string{
			"DTSTART:20240601T090000",
			"DTEND:20240601T090059",
			"SUMMARY:Standup",
			"DESCRIPTION:Daily sync",
			"RRULE:FREQ=WEEKLY",
		} {
			if !contains(lines, want) {
				t.Errorf("VEVENT missing %q in %v", want, lines)
			}
		}
		if file.Name != "Standup.ics" {
			t.Errorf("Name = %q", file.Name)
		}
		if file.ContentType != "text/calendar" {
			t.Errorf("ContentType = %q", file.ContentType)
		}
	})

	t.Run("No recurrence", func(t *testing.T) {
		ev := standup()
		ev.Recurrence = model.RecurrenceNone

		file, err := event.CalendarFile(ev, stamp)
		if err != nil {
			t.Fatalf("CalendarFile: %v", err)
		}
		if strings.Contains(file.Content, "RRULE") {
			t.Errorf("unexpected RRULE in %q", file.Content)
		}
		vevent(t, file.Content)
	})

	t.Run("Stable UID", func(t *testing.T) {
		a, _ := event.CalendarFile(standup(), stamp)
		b, _ := event.CalendarFile(standup(), stamp.Add(time.Hour))
		uid := "UID:" + event.EventUID(standup())
		if !contains(vevent(t, a.Content), uid) || !contains(vevent(t, b.Content), uid) {
			t.Errorf("expected %q in both files", uid)
		}

		other := standup()
		other.Time = "10:00"
		if event.EventUID(other) == event.EventUID(standup()) {
			t.Error("different start should change the UID")
		}
	})

	t.Run("Invalid time", func(t *testing.T) {
		ev := standup()
		ev.Time = "9am"
		if _, err := event.CalendarFile(ev, stamp); err == nil {
			t.Error("expected error")
		}
	})
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Standup":        "Standup.ics",
		"a/b\\c":         "a-b-c.ics",
		"   ":            "event.ics",
		"Plan\nreview":   "Plan review.ics",
		"Q&A: 2024 plan": "Q&A: 2024 plan.ics",
	}
	for in, want := range tests {
		if got := event.FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
