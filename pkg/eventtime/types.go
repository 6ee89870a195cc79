package eventtime

import (
	"fmt"
	"time"
)

// EventDuration is the fixed length of every resolved event window.
const EventDuration = time.Hour

// DateLayout is the wire format of a calendar date.
const DateLayout = "2006-01-02"

// InstantLayout renders an instant as ISO-8601 UTC with millisecond precision.
const InstantLayout = "2006-01-02T15:04:05.000Z07:00"

// Date is a civil calendar date with no time-of-day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string and rejects dates that do not exist.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Valid reports whether d names a real day in the proleptic Gregorian calendar.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return DateOf(t) == d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Selection is what the user picked: a date, a wall-clock "HH:MM" and a zone.
type Selection struct {
	Date       Date
	TimeOfDay  string
	TimezoneID string
}

// Window is a resolved event: absolute UTC instants plus a readable zone label.
type Window struct {
	Start        time.Time
	End          time.Time
	TimezoneID   string
	DisplayLabel string
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// ZoneInfo describes one entry of the timezone catalog.
type ZoneInfo struct {
	ID    string
	Label string
}
