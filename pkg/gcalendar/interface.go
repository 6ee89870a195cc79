package gcalendar

import "context"

// ICalendar creates events on behalf of the user owning accessToken.
// Implementations are safe for concurrent use.
type ICalendar interface {
	CreateEvent(ctx context.Context, accessToken string, req CreateEventRequest) (*Event, error)
}

var _ ICalendar = (*Client)(nil)
