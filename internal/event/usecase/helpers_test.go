package usecase

import (
	"strings"
	"testing"
)

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain", in: `{"title":"A"}`, want: `{"title":"A"}`},
		{name: "Fenced json", in: "```json\n{\"title\":\"A\"}\n```", want: `{"title":"A"}`},
		{name: "Fenced bare", in: "```\n{\"title\":\"A\"}\n```", want: `{"title":"A"}`},
		{name: "Prose around", in: "Sure! Here it is: {\"title\":\"A\"} Hope this helps.", want: `{"title":"A"}`},
		{name: "Think block", in: "<think>the user wants {json}</think>\n{\"title\":\"A\"}", want: `{"title":"A"}`},
		{name: "No object", in: "I could not find an event.", want: "I could not find an event."},
		{name: "Fence inside value", in: "{\"description\":\"Walk through ```go``` snippets\"}", want: "{\"description\":\"Walk through ```go``` snippets\"}"},
		{name: "Prose and fence inside value", in: "Result: ```json\n{\"description\":\"see ```sh``` block\"}\n```", want: "{\"description\":\"see ```sh``` block\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	t.Run("Normalizes recurrence and attendees", func(t *testing.T) {
		ev, err := parseEvent(`{"title":"Sync","date":"2024-06-01","time":"14:30","attendees":[" a@x.io ",""],"recurrence":"weekly","extra":1}`)
		if err != nil {
			t.Fatalf("parseEvent: %v", err)
		}
		if ev.Recurrence != "WEEKLY" {
			t.Errorf("Recurrence = %q", ev.Recurrence)
		}
		if len(ev.Attendees) != 1 || ev.Attendees[0] != "a@x.io" {
			t.Errorf("Attendees = %v", ev.Attendees)
		}
	})

	t.Run("Code fence in description", func(t *testing.T) {
		reply := "{\"title\":\"Code review\",\"date\":\"2024-06-03\",\"time\":\"15:00\",\"attendees\":[],\"description\":\"Walk through ```go``` snippets\",\"recurrence\":\"NONE\"}"
		ev, err := parseEvent(reply)
		if err != nil {
			t.Fatalf("parseEvent: %v", err)
		}
		if ev.Title != "Code review" || ev.Description != "Walk through ```go``` snippets" {
			t.Errorf("unexpected event %+v", ev)
		}
	})

	t.Run("Missing attendees becomes empty list", func(t *testing.T) {
		ev, err := parseEvent(`{"title":"Sync","date":"2024-06-01","time":"14:30","recurrence":"NONE"}`)
		if err != nil {
			t.Fatalf("parseEvent: %v", err)
		}
		if ev.Attendees == nil || len(ev.Attendees) != 0 {
			t.Errorf("Attendees = %#v", ev.Attendees)
		}
	})

	for name, reply := range map[string]string{
		"Empty":            "",
		"Wrong type":       `{"title":"Sync","date":"2024-06-01","time":"14:30","attendees":"a@x.io","recurrence":"NONE"}`,
		"Missing date":     `{"title":"Sync","time":"14:30","recurrence":"NONE"}`,
		"Bad time":         `{"title":"Sync","date":"2024-06-01","time":"2pm","recurrence":"NONE"}`,
		"Unknown recur":    `{"title":"Sync","date":"2024-06-01","time":"14:30","recurrence":"HOURLY"}`,
		"Missing recur":    `{"title":"Sync","date":"2024-06-01","time":"14:30"}`,
		"Truncated object": `{"title":"Sync","date":"2024-06-01"`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := parseEvent(reply); err == nil {
				t.Errorf("expected error for %q", reply)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("Lunch with Ana tomorrow at noon", "2024-06-01T10:00:00Z", "me@example.com")
	for _, want := range []string{
		"2024-06-01T10:00:00Z",
		"me@example.com",
		"Lunch with Ana tomorrow at noon",
		"YYYY-MM-DD",
		"HH:MM",
		"NONE, DAILY, WEEKLY, MONTHLY, YEARLY",
		"Return ONLY the JSON object",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	anon := BuildPrompt("Lunch", "2024-06-01T10:00:00Z", "")
	if !strings.Contains(anon, noSubmitter) {
		t.Errorf("anonymous prompt missing %q", noSubmitter)
	}
	if strings.Contains(anon, "Always include the submitter") {
		t.Error("anonymous prompt should not ask to include a submitter")
	}
}
