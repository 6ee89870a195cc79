package ics

import (
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
)

func TestRender(t *testing.T) {
	start := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	out, err := Render(Event{
		UID:         "fixed-uid@test",
		Summary:     "Standup",
		Description: "Event created from the app.",
		Start:       start,
		End:         start.Add(time.Hour),
		TimezoneID:  "America/New_York",
	}, now)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProductID,
		"METHOD:PUBLISH",
		"X-WR-TIMEZONE:America/New_York",
		"UID:fixed-uid@test",
		"DTSTART:20240615T130000Z",
		"DTEND:20240615T140000Z",
		"DTSTAMP:20240601T080000Z",
		"SUMMARY:Standup",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar() error = %v", err)
	}
	events := cal.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	gotStart, err := events[0].GetStartAt()
	if err != nil || !gotStart.Equal(start) {
		t.Errorf("GetStartAt() = %v, %v", gotStart, err)
	}
}

func TestRenderGeneratesUID(t *testing.T) {
	start := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)

	out, err := Render(Event{Summary: "x", Start: start, End: start.Add(time.Hour)}, start)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "@"+uidDomain) {
		t.Errorf("expected generated UID, got:\n%s", out)
	}
	if strings.Contains(out, "X-WR-TIMEZONE") {
		t.Errorf("no zone header expected without a zone id")
	}
}

func TestRenderRejectsEmptyWindow(t *testing.T) {
	start := time.Date(2024, 6, 15, 13, 0, 0, 0, time.UTC)
	if _, err := Render(Event{Start: start, End: start}, start); !errors.Is(err, ErrEmptyWindow) {
		t.Errorf("Render() error = %v, want ErrEmptyWindow", err)
	}
}
