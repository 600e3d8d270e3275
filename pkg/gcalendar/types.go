package gcalendar

import "time"

// EventLink holds the fields pre-filled in the "create event" form.
type EventLink struct {
	Title   string
	Details string
	Start   time.Time // wall clock, written without zone
	End     time.Time // wall clock, written without zone
	Guests  []string
	RRule   string // e.g. "FREQ=WEEKLY"; empty for none
}
