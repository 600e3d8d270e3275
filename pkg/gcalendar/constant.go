package gcalendar

const (
	// EventEditURL is the Google Calendar "create event" form.
	EventEditURL = "https://calendar.google.com/calendar/r/eventedit"

	// DateTimeLayout is the floating date-time format of the dates parameter.
	DateTimeLayout = "20060102T150405"
)
