package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"event-calendar-webhook/internal/model"
	"event-calendar-webhook/pkg/gcalendar"
	"event-calendar-webhook/pkg/icsfile"
)

const (
	// LinkDuration is the length of the event pre-filled in the calendar link.
	LinkDuration = time.Hour

	// FileDuration is the nominal one-minute block written to the .ics file.
	FileDuration = 59 * time.Second

	defaultFileName = "event"
	fileExtension   = ".ics"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("event-calendar-webhook"))

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-", "\r", " ", "\n", " ")

// CalendarLink returns a Google Calendar "create event" URL pre-filled from ev.
// The end is one hour after the start; a start at 23:30 ends at 00:30 on the
// following day.
func CalendarLink(ev model.ExtractedEvent) (string, error) {
	start, err := ev.Start()
	if err != nil {
		return "", err
	}

	return gcalendar.BuildEventLink(gcalendar.EventEditURL, gcalendar.EventLink{
		Title:   ev.Title,
		Details: ev.Description,
		Start:   start,
		End:     start.Add(LinkDuration),
		Guests:  ev.Attendees,
		RRule:   ev.Recurrence.RRule(),
	}), nil
}

// CalendarFile renders ev as an iCalendar document. stamp becomes DTSTAMP.
func CalendarFile(ev model.ExtractedEvent, stamp time.Time) (CalendarFileContent, error) {
	start, err := ev.Start()
	if err != nil {
		return CalendarFileContent{}, err
	}

	content, err := icsfile.Render(icsfile.DefaultProductID, icsfile.Event{
		UID:         EventUID(ev),
		Summary:     ev.Title,
		Description: ev.Description,
		Start:       start,
		End:         start.Add(FileDuration),
		Stamp:       stamp,
		RRule:       ev.Recurrence.RRule(),
	})
	if err != nil {
		return CalendarFileContent{}, fmt.Errorf("render calendar file: %w", err)
	}

	return CalendarFileContent{
		Name:        FileName(ev.Title),
		Content:     content,
		ContentType: icsfile.ContentType,
	}, nil
}

// EventUID is stable for the same date, time and title.
func EventUID(ev model.ExtractedEvent) string {
	return uuid.NewSHA1(uidNamespace, []byte(ev.Date+"T"+ev.Time+"|"+ev.Title)).String()
}

// FileName returns title + ".ics" with path separators replaced.
func FileName(title string) string {
	name := strings.TrimSpace(fileNameReplacer.Replace(title))
	if name == "" {
		name = defaultFileName
	}
	return name + fileExtension
}
