package eventtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timeOfDayPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// Resolver turns a Selection into a Window anchored to the selected zone.
// It never consults the host's local zone.
type Resolver struct {
	now func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve validates sel and computes its one-hour window.
// Validation order: time of day, timezone, date, then the past-date check.
func (r *Resolver) Resolve(sel Selection) (Window, error) {
	hour, minute, err := ParseTimeOfDay(sel.TimeOfDay)
	if err != nil {
		return Window{}, err
	}

	loc, err := LoadZone(sel.TimezoneID)
	if err != nil {
		return Window{}, err
	}

	if !sel.Date.Valid() {
		return Window{}, fmt.Errorf("%w: %s is not a calendar date", ErrInvalidInput, sel.Date)
	}

	today := DateOf(r.now().In(loc))
	if sel.Date.Before(today) {
		return Window{}, fmt.Errorf("%w: %s is before %s in %s", ErrPastDate, sel.Date, today, loc)
	}

	start := WallClock(sel.Date, hour, minute, loc).UTC()
	return Window{
		Start:        start,
		End:          start.Add(EventDuration),
		TimezoneID:   loc.String(),
		DisplayLabel: Label(start, loc),
	}, nil
}

// Today returns the current calendar date in the named zone.
func (r *Resolver) Today(timezoneID string) (Date, error) {
	loc, err := LoadZone(timezoneID)
	if err != nil {
		return Date{}, err
	}
	return DateOf(r.now().In(loc)), nil
}

// ParseTimeOfDay parses "HH:MM" with hour in [0,23] and minute in [0,59].
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, s)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q is out of range", ErrInvalidInput, s)
	}
	return hour, minute, nil
}

// LoadZone loads an IANA zone. The empty name and "Local" are rejected so
// that nothing resolves against the host environment.
func LoadZone(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" || id == "Local" {
		return nil, fmt.Errorf("%w: timezone %q is not a recognized identifier", ErrInvalidInput, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q is not a recognized identifier", ErrInvalidInput, id)
	}
	return loc, nil
}

// WallClock interprets date + hour:minute as wall-clock time in loc.
//
// Around offset transitions the result is deterministic:
//   - an ambiguous local time (clocks set back) takes the standard-time offset;
//   - a nonexistent local time (clocks set forward) is read with the
//     standard-time offset on either side of the gap, which moves it forward by
//     the size of the gap. When neither side is standard time the
//     pre-transition offset is used.
func WallClock(d Date, hour, minute int, loc *time.Location) time.Time {
	naive := time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, time.UTC)

	before := naive.Add(-24 * time.Hour).In(loc)
	after := naive.Add(24 * time.Hour).In(loc)
	_, offBefore := before.Zone()
	_, offAfter := after.Zone()

	offsets := []int{offBefore}
	if offAfter != offBefore {
		offsets = append(offsets, offAfter)
	}

	var candidates []time.Time
	for _, off := range offsets {
		c := naive.Add(-time.Duration(off) * time.Second)
		if _, got := c.In(loc).Zone(); got == off {
			candidates = append(candidates, c.In(loc))
		}
	}

	switch len(candidates) {
	case 1:
		return candidates[0]
	case 2:
		for _, c := range candidates {
			if !c.IsDST() {
				return c
			}
		}
		return candidates[0]
	}

	off := offBefore
	if before.IsDST() && !after.IsDST() {
		off = offAfter
	}
	return naive.Add(-time.Duration(off) * time.Second).In(loc)
}

// Label formats the zone name with its abbreviation and UTC offset at t,
// e.g. "America/New_York (EDT, UTC-04:00)".
func Label(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	return fmt.Sprintf("%s (%s, UTC%s)", loc.String(), local.Format("MST"), local.Format("-07:00"))
}

// FormatInstant renders t as InstantLayout in UTC, e.g. "2024-06-15T13:00:00.000Z".
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}
