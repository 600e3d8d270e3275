package icsfile

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emersion/go-ical"
)

const (
	// DefaultProductID is written as PRODID when none is given.
	DefaultProductID = "-//event-calendar-webhook//EN"

	// FloatingLayout is the DATE-TIME form without a zone suffix.
	FloatingLayout = "20060102T150405"

	// ContentType is the MIME type of a rendered calendar.
	ContentType = "text/calendar"

	// maxLineOctets is the content-line length after which lines are folded.
	maxLineOctets = 75

	crlf = "\r\n"
)

// Event is a single VEVENT. Start and End are written as floating local
// times; Stamp is written in UTC.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
	RRule       string // e.g. "FREQ=WEEKLY"; empty for none
}

// Render serializes ev inside a VCALENDAR envelope. SUMMARY and DESCRIPTION
// are written verbatim without text escaping. Lines longer than 75 octets
// are folded.
func Render(productID string, ev Event) (string, error) {
	if productID == "" {
		productID = DefaultProductID
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, ev.UID)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, ev.Stamp.UTC())
	setRaw(vevent.Props, ical.PropDateTimeStart, ev.Start.Format(FloatingLayout))
	setRaw(vevent.Props, ical.PropDateTimeEnd, ev.End.Format(FloatingLayout))
	setRaw(vevent.Props, ical.PropSummary, escapeLineBreaks(ev.Summary))
	setRaw(vevent.Props, ical.PropDescription, escapeLineBreaks(ev.Description))
	if ev.RRule != "" {
		setRaw(vevent.Props, ical.PropRecurrenceRule, ev.RRule)
	}

	cal.Children = append(cal.Children, vevent.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return foldLines(buf.String()), nil
}

// foldLines breaks every content line longer than maxLineOctets into a
// first line and continuation lines starting with a space. A UTF-8 sequence
// is never split.
func foldLines(content string) string {
	var sb strings.Builder
	sb.Grow(len(content) + len(content)/maxLineOctets*3)

	for _, line := range strings.SplitAfter(content, crlf) {
		body := strings.TrimSuffix(line, crlf)
		limit := maxLineOctets
		for len(body) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(body[cut]) {
				cut--
			}
			sb.WriteString(body[:cut])
			sb.WriteString(crlf + " ")
			body = body[cut:]
			limit = maxLineOctets - 1
		}
		sb.WriteString(body)
		if strings.HasSuffix(line, crlf) {
			sb.WriteString(crlf)
		}
	}
	return sb.String()
}

// escapeLineBreaks writes line breaks as the TEXT escape "\n". Everything
// else is kept verbatim.
func escapeLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

var lineBreaks = strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`)

func setRaw(props ical.Props, name, value string) {
	prop := ical.NewProp(name)
	prop.Value = value
	props.Set(prop)
}
