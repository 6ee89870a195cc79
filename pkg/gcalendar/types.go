package gcalendar

import (
	"net/http"
	"time"
)

// DefaultCalendarID is the signed-in user's primary calendar.
const DefaultCalendarID = "primary"

// ClientOptions configures the Calendar client.
type ClientOptions struct {
	// BaseURL overrides the API root, e.g. "http://127.0.0.1:8081/calendar/v3/".
	BaseURL string
	// HTTPClient is the base transport the bearer token is layered on.
	HTTPClient *http.Client
	// Timeout bounds a single API call; zero leaves the HTTP client default.
	Timeout time.Duration
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "America/New_York"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
