// Package ics renders resolved event windows as iCalendar documents.
package ics

import (
	"errors"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	ProductID   = "-//calendar-event-creator//Event Export//EN"
	ContentType = "text/calendar; charset=utf-8"
	uidDomain   = "calendar-event-creator"
)

var ErrEmptyWindow = errors.New("ics: end must be after start")

// Event is the data written for a single VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	TimezoneID  string
}

// Render serializes ev as a one-event calendar. Times are written in UTC;
// the zone id is carried as X-WR-TIMEZONE for clients that display it.
func Render(ev Event, now time.Time) (string, error) {
	if !ev.End.After(ev.Start) {
		return "", ErrEmptyWindow
	}

	uid := ev.UID
	if uid == "" {
		uid = uuid.NewString() + "@" + uidDomain
	}

	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ical.MethodPublish)
	if ev.TimezoneID != "" {
		cal.SetXWRTimezone(ev.TimezoneID)
	}

	vevent := cal.AddEvent(uid)
	vevent.SetDtStampTime(now.UTC())
	vevent.SetStartAt(ev.Start.UTC())
	vevent.SetEndAt(ev.End.UTC())
	vevent.SetSummary(ev.Summary)
	if ev.Description != "" {
		vevent.SetDescription(ev.Description)
	}

	return cal.Serialize(), nil
}
