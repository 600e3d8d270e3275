package icsfile_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/emersion/go-ical"

	"event-calendar-webhook/pkg/icsfile"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\r\n"), "\r\n")
}

func indexOf(ls []string, want string) int {
	for i, l := range ls {
		if l == want {
			return i
		}
	}
	return -1
}

func TestRender(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	ev := icsfile.Event{
		UID:         "uid-1",
		Summary:     "Standup",
		Description: "Daily sync",
		Start:       start,
		End:         start.Add(59 * time.Second),
		Stamp:       time.Date(2024, 5, 30, 10, 0, 0, 0, time.UTC),
		RRule:       "FREQ=WEEKLY",
	}

	out, err := icsfile.Render("", ev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ls := lines(out)
	if ls[0] != "BEGIN:VCALENDAR" || ls[len(ls)-1] != "END:VCALENDAR" {
		t.Fatalf("missing VCALENDAR envelope:\n%s", out)
	}

	begin := indexOf(ls, "BEGIN:VEVENT")
	end := indexOf(ls, "END:VEVENT")
	if begin < 0 || end < begin {
		t.Fatalf("missing VEVENT block:\n%s", out)
	}

	for _, want := range []string{
		"DTSTART:20240601T090000",
		"DTEND:20240601T090059",
		"SUMMARY:Standup",
		"DESCRIPTION:Daily sync",
		"RRULE:FREQ=WEEKLY",
		"UID:uid-1",
		"DTSTAMP:20240530T100000Z",
	} {
		i := indexOf(ls, want)
		if i <= begin || i >= end {
			t.Errorf("expected line %q inside VEVENT:\n%s", want, out)
		}
	}

	for _, want := range []string{"VERSION:2.0", "PRODID:" + icsfile.DefaultProductID} {
		if i := indexOf(ls, want); i < 0 || i > begin {
			t.Errorf("expected calendar line %q before VEVENT", want)
		}
	}
}

func TestRenderWithoutRecurrence(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	out, err := icsfile.Render("-//test//EN", icsfile.Event{
		UID:     "uid-2",
		Summary: "One-off",
		Start:   start,
		End:     start.Add(59 * time.Second),
		Stamp:   start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, "RRULE") {
		t.Errorf("did not expect RRULE:\n%s", out)
	}
	for _, l := range lines(out) {
		if l == "" {
			t.Errorf("unexpected empty line:\n%q", out)
		}
	}
	if indexOf(lines(out), "PRODID:-//test//EN") < 0 {
		t.Errorf("expected custom PRODID:\n%s", out)
	}
}

func TestRenderEscapesLineBreaks(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	out, err := icsfile.Render("", icsfile.Event{
		UID:         "uid-3",
		Summary:     "Review",
		Description: "agenda:\r\n1. budget\n2. hiring",
		Start:       start,
		End:         start.Add(59 * time.Second),
		Stamp:       start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if indexOf(lines(out), `DESCRIPTION:agenda:\n1. budget\n2. hiring`) < 0 {
		t.Errorf("expected escaped description:\n%s", out)
	}
	if indexOf(lines(out), "PRODID:"+icsfile.DefaultProductID) < 0 {
		t.Errorf("expected default PRODID:\n%s", out)
	}
}

func TestRenderFoldsLongLines(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	tests := map[string]string{
		"ASCII":     strings.Repeat("Quarterly planning with every team lead. ", 6),
		"Multibyte": strings.Repeat("Café réunion ", 20),
	}

	for name, desc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := icsfile.Render("", icsfile.Event{
				UID:         "uid-4",
				Summary:     "Planning",
				Description: desc,
				Start:       start,
				End:         start.Add(59 * time.Second),
				Stamp:       start,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, l := range lines(out) {
				if len(l) > 75 {
					t.Errorf("line longer than 75 octets (%d): %q", len(l), l)
				}
				if !utf8.ValidString(l) {
					t.Errorf("line splits a UTF-8 sequence: %q", l)
				}
			}

			cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			events := cal.Events()
			if len(events) != 1 {
				t.Fatalf("expected one event, got %d", len(events))
			}
			if got := events[0].Props.Get(ical.PropDescription).Value; got != desc {
				t.Errorf("DESCRIPTION after unfolding = %q, want %q", got, desc)
			}
		})
	}
}
