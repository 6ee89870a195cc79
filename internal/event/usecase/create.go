package usecase

import (
	"context"
	"strings"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/internal/model"
	"calendar-event-creator/pkg/gcalendar"
)

// Create validates the form and writes one event to the caller's calendar.
// Checks run in the order the form reports them: session, title, then time.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if !sc.Authenticated() {
		return event.CreateOutput{}, event.ErrUnauthenticated
	}

	title, err := uc.title(input.Title)
	if err != nil {
		return event.CreateOutput{}, err
	}

	w, err := uc.resolve(input.Date, input.Time, input.Timezone)
	if err != nil {
		return event.CreateOutput{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = uc.opts.DefaultDescription
	}

	created, err := uc.calendar.CreateEvent(ctx, sc.AccessToken, gcalendar.CreateEventRequest{
		CalendarID:  uc.opts.CalendarID,
		Summary:     title,
		Description: description,
		StartTime:   w.Start,
		EndTime:     w.End,
		Timezone:    w.TimezoneID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create CreateEvent: %v", err)
		return event.CreateOutput{}, mapCalendarError(err)
	}

	uc.l.Infof(ctx, "event.usecase.Create: event %s created for user=%s at %s", created.ID, sc.UserID, w.DisplayLabel)
	return event.CreateOutput{
		Event: event.CreatedEvent{
			ID:          created.ID,
			Title:       title,
			Description: description,
			HtmlLink:    created.HtmlLink,
			Window:      w,
		},
	}, nil
}
