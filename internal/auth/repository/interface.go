package repository

import (
	"context"

	"calendar-event-creator/internal/auth"
)

// Repository is the composed interface for the auth data store.
type Repository interface {
	SessionRepository
	StateRepository
}

// SessionRepository stores signed-in sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, opt CreateSessionOptions) (auth.Session, error)
	GetSession(ctx context.Context, id string) (auth.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// StateRepository stores pending OAuth states until the callback consumes them.
type StateRepository interface {
	SaveState(ctx context.Context, opt SaveStateOptions) error
	// ConsumeState returns the provider the state was issued for and forgets it.
	ConsumeState(ctx context.Context, state string) (string, error)
}
