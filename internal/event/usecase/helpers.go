package usecase

import (
	"errors"
	"fmt"
	"strings"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
)

// resolve picks the zone from the catalog and computes the window.
func (uc *implUseCase) resolve(date, timeOfDay, timezone string) (eventtime.Window, error) {
	zone, err := uc.catalog.Select(timezone)
	if err != nil {
		return eventtime.Window{}, mapTimeError(err)
	}

	d, err := eventtime.ParseDate(date)
	if err != nil {
		return eventtime.Window{}, mapTimeError(err)
	}

	w, err := uc.resolver.Resolve(eventtime.Selection{
		Date:       d,
		TimeOfDay:  timeOfDay,
		TimezoneID: zone,
	})
	if err != nil {
		return eventtime.Window{}, mapTimeError(err)
	}
	return w, nil
}

func mapTimeError(err error) error {
	switch {
	case errors.Is(err, eventtime.ErrPastDate):
		return fmt.Errorf("%w: %v", event.ErrPastDate, err)
	case errors.Is(err, eventtime.ErrInvalidInput):
		return fmt.Errorf("%w: %v", event.ErrInvalidInput, err)
	default:
		return err
	}
}

func mapCalendarError(err error) error {
	switch {
	case errors.Is(err, gcalendar.ErrMissingToken):
		return event.ErrUnauthenticated
	case errors.Is(err, gcalendar.ErrRemoteRejected):
		return fmt.Errorf("%w: %v", event.ErrRemoteRejected, err)
	default:
		return fmt.Errorf("%w: %v", event.ErrNetworkFailure, err)
	}
}

func (uc *implUseCase) title(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", event.ErrMissingTitle
	}
	return title, nil
}

// filename turns a title into a safe .ics file name.
func filename(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimRight(b.String(), "-")
	if name == "" {
		name = "event"
	}
	if len(name) > 64 {
		name = strings.TrimRight(name[:64], "-")
	}
	return name + ".ics"
}
