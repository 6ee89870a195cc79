package event

import (
	"context"

	"calendar-event-creator/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
	ExportICS(ctx context.Context, input CreateInput) (ExportICSOutput, error)
	ListTimezones(ctx context.Context) (ListTimezonesOutput, error)
}
