package usecase

import (
	"context"
	"errors"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/internal/auth/repository"
	"calendar-event-creator/pkg/oauth"
)

// GetSession returns the live session for id or ErrSessionNotFound.
func (uc *implUseCase) GetSession(ctx context.Context, sessionID string) (auth.Session, error) {
	if sessionID == "" {
		return auth.Session{}, auth.ErrSessionNotFound
	}

	s, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.Session{}, auth.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "auth.usecase.GetSession: %v", err)
		return auth.Session{}, err
	}

	if !s.ExpiresAt.IsZero() && !uc.now().Before(s.ExpiresAt) {
		_ = uc.repo.DeleteSession(ctx, s.ID)
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return s, nil
}

// SignOut forgets the session. Unknown ids are not an error.
func (uc *implUseCase) SignOut(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := uc.repo.DeleteSession(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignOut: %v", err)
		return err
	}
	return nil
}

// Providers lists the enabled sign-in providers.
func (uc *implUseCase) Providers(ctx context.Context) []auth.ProviderInfo {
	out := make([]auth.ProviderInfo, 0, len(uc.order))
	for _, id := range uc.order {
		out = append(out, auth.ProviderInfo{ID: id, Name: displayName(id)})
	}
	return out
}

func displayName(id string) string {
	switch id {
	case oauth.ProviderGoogle:
		return "Google"
	case oauth.ProviderGitHub:
		return "GitHub"
	default:
		return id
	}
}
