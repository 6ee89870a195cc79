package usecase

import (
	"context"
	"strings"

	"calendar-event-creator/internal/event"
	"calendar-event-creator/pkg/ics"
)

// Preview resolves the window without touching the calendar.
func (uc *implUseCase) Preview(ctx context.Context, input event.PreviewInput) (event.PreviewOutput, error) {
	w, err := uc.resolve(input.Date, input.Time, input.Timezone)
	if err != nil {
		return event.PreviewOutput{}, err
	}
	return event.PreviewOutput{Window: w}, nil
}

// ExportICS resolves the window and renders it as an iCalendar file.
func (uc *implUseCase) ExportICS(ctx context.Context, input event.CreateInput) (event.ExportICSOutput, error) {
	title, err := uc.title(input.Title)
	if err != nil {
		return event.ExportICSOutput{}, err
	}

	w, err := uc.resolve(input.Date, input.Time, input.Timezone)
	if err != nil {
		return event.ExportICSOutput{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = uc.opts.DefaultDescription
	}

	content, err := ics.Render(ics.Event{
		Summary:     title,
		Description: description,
		Start:       w.Start,
		End:         w.End,
		TimezoneID:  w.TimezoneID,
	}, uc.now())
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ExportICS Render: %v", err)
		return event.ExportICSOutput{}, err
	}

	return event.ExportICSOutput{
		Filename: filename(title),
		Content:  content,
		Window:   w,
	}, nil
}
