package usecase

import (
	"fmt"
	"strings"
)

// SystemPrompt is sent as the system message of every extraction request.
const SystemPrompt = "You extract structured meeting data from text."

const extractionPrompt = `You will be given a text describing a meeting or important event.
Extract the event and describe it as a single JSON object.

SUBMITTED AT (use it to resolve relative dates such as "tomorrow" or "next Friday"):
%s

SUBMITTED BY:
%s

OUTPUT SCHEMA:
{
  "title": "short event title, never empty",
  "date": "YYYY-MM-DD",
  "time": "HH:MM in 24-hour format",
  "attendees": ["email addresses of the participants"],
  "description": "short description, empty string if none",
  "recurrence": "one of NONE, DAILY, WEEKLY, MONTHLY, YEARLY"
}

RULES:
1. "date" MUST be formatted YYYY-MM-DD, for example 2024-06-01.
2. "time" MUST be formatted HH:MM using a 24-hour clock, for example 09:00 or 17:30. If no time is mentioned use 09:00.
3. "attendees" MUST be an array of email addresses. %s Use [] when there are none.
4. "recurrence" MUST be exactly one of: NONE, DAILY, WEEKLY, MONTHLY, YEARLY. Use NONE when the event does not repeat.
5. Return ONLY the JSON object. No markdown, no code blocks, no explanation text.

TEXT:
%s`

const noSubmitter = "(not provided)"

// BuildPrompt builds the user prompt for one submission.
// timestamp is the ISO-8601 receipt time and email may be empty.
func BuildPrompt(text, timestamp, email string) string {
	submitter := noSubmitter
	attendeeRule := "Only include addresses that appear in the text."
	if e := strings.TrimSpace(email); e != "" {
		submitter = e
		attendeeRule = fmt.Sprintf("Always include the submitter %s.", e)
	}
	return fmt.Sprintf(extractionPrompt, timestamp, submitter, attendeeRule, text)
}
