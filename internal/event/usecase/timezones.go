package usecase

import (
	"context"

	"calendar-event-creator/internal/event"
)

// ListTimezones returns the catalog labelled at the current instant, plus
// the values a fresh form starts with.
func (uc *implUseCase) ListTimezones(ctx context.Context) (event.ListTimezonesOutput, error) {
	zones := uc.catalog.Zones()
	defaultZone := uc.catalog.Fixed()
	if defaultZone == "" && len(zones) > 0 {
		defaultZone = zones[0]
	}

	today, err := uc.resolver.Today(defaultZone)
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.ListTimezones Today: %v", err)
		return event.ListTimezonesOutput{}, err
	}

	return event.ListTimezonesOutput{
		Zones:           uc.catalog.Describe(uc.now()),
		Fixed:           uc.catalog.Fixed(),
		DefaultTimezone: defaultZone,
		DefaultDate:     today,
		DefaultTime:     event.DefaultTimeOfDay,
	}, nil
}
