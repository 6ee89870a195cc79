package memory

import (
	"context"

	"github.com/google/uuid"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/internal/auth/repository"
)

func (r *implRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (auth.Session, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "auth.repository.memory.CreateSession: %v", err)
		return auth.Session{}, repository.ErrFailedToInsert
	}

	s := auth.Session{
		ID:          id.String(),
		Provider:    opt.Provider,
		AccessToken: opt.AccessToken,
		User:        opt.User,
		CreatedAt:   opt.CreatedAt,
		ExpiresAt:   opt.CreatedAt.Add(r.sessionTTL),
	}
	r.sessions.Add(s.ID, s)
	return s, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (auth.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return auth.Session{}, repository.ErrNotFound
	}
	return s, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	r.sessions.Remove(id)
	return nil
}
