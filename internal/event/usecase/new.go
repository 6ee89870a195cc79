package usecase

import (
	"time"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
	"calendar-event-creator/pkg/log"
)

// Options tunes how events are written.
type Options struct {
	CalendarID         string
	DefaultDescription string
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	l        log.Logger
	calendar gcalendar.ICalendar
	resolver *eventtime.Resolver
	catalog  *eventtime.Catalog
	opts     Options
	now      func() time.Time
}

// New creates the event UseCase. now decides what "today" is; nil means time.Now.
func New(l log.Logger, calendar gcalendar.ICalendar, catalog *eventtime.Catalog, now func() time.Time, opts Options) *implUseCase {
	if now == nil {
		now = time.Now
	}
	if opts.CalendarID == "" {
		opts.CalendarID = gcalendar.DefaultCalendarID
	}
	if opts.DefaultDescription == "" {
		opts.DefaultDescription = event.DefaultDescription
	}
	return &implUseCase{
		l:        l,
		calendar: calendar,
		resolver: eventtime.NewResolver(eventtime.WithClock(now)),
		catalog:  catalog,
		opts:     opts,
		now:      now,
	}
}
