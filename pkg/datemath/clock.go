package datemath

import (
	"fmt"
	"time"
)

// Clock resolves "now" and "today" in a fixed IANA time zone.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// WithNow returns a copy of c that reads the current time from now.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{location: c.location, now: now}
}

// Location returns the clock's time zone.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Now returns the current instant in the clock's time zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Today returns midnight at the start of the current day in the clock's time zone.
func (c *Clock) Today() time.Time {
	return StartOfDay(c.Now())
}

// StartOfDay returns midnight at the start of t's day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
