package memory

import (
	"context"

	"calendar-event-creator/internal/auth/repository"
)

func (r *implRepository) SaveState(ctx context.Context, opt repository.SaveStateOptions) error {
	r.states.Add(opt.State, opt.Provider)
	return nil
}

// ConsumeState is single use: of two concurrent callbacks with the same
// state only the one whose Remove finds the entry succeeds.
func (r *implRepository) ConsumeState(ctx context.Context, state string) (string, error) {
	provider, ok := r.states.Peek(state)
	if !ok {
		return "", repository.ErrNotFound
	}
	if !r.states.Remove(state) {
		return "", repository.ErrNotFound
	}
	return provider, nil
}
