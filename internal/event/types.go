package event

import (
	"calendar-event-creator/pkg/eventtime"
)

const (
	// DefaultDescription is written when the form leaves the description empty.
	DefaultDescription = "Event created from the app."
	// DefaultTimeOfDay is the form's initial time.
	DefaultTimeOfDay = "09:00"
)

// --- Domain Model ---

// CreatedEvent is an event accepted by the calendar.
type CreatedEvent struct {
	ID          string
	Title       string
	Description string
	HtmlLink    string
	Window      eventtime.Window
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Timezone    string
}

type PreviewInput struct {
	Date     string
	Time     string
	Timezone string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event CreatedEvent
}

type PreviewOutput struct {
	Window eventtime.Window
}

type ExportICSOutput struct {
	Filename string
	Content  string
	Window   eventtime.Window
}

type ListTimezonesOutput struct {
	Zones           []eventtime.ZoneInfo
	Fixed           string
	DefaultTimezone string
	DefaultDate     eventtime.Date
	DefaultTime     string
}
