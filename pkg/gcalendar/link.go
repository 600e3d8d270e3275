package gcalendar

import "strings"

// BuildEventLink returns a URL that opens the create-event form at base
// pre-filled with l. Parameters are written in a fixed order: text, dates,
// details, then add and recur when set.
func BuildEventLink(base string, l EventLink) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("?text=")
	sb.WriteString(EncodeURIComponent(l.Title))
	sb.WriteString("&dates=")
	sb.WriteString(l.Start.Format(DateTimeLayout))
	sb.WriteString("/")
	sb.WriteString(l.End.Format(DateTimeLayout))
	sb.WriteString("&details=")
	sb.WriteString(EncodeURIComponent(l.Details))

	if len(l.Guests) > 0 {
		sb.WriteString("&add=")
		sb.WriteString(EncodeURIComponent(strings.Join(l.Guests, ",")))
	}

	if l.RRule != "" {
		sb.WriteString("&recur=RRULE:")
		sb.WriteString(l.RRule)
	}

	return sb.String()
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way JavaScript's
// encodeURIComponent does: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )
// is written as UTF-8 %XX.
func EncodeURIComponent(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
