package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/internal/auth/repository"
)

// SignIn issues a state for provider and returns the consent URL.
func (uc *implUseCase) SignIn(ctx context.Context, provider string) (auth.SignInOutput, error) {
	p, ok := uc.providers[provider]
	if !ok {
		return auth.SignInOutput{}, auth.ErrUnknownProvider
	}

	state := uuid.NewString()
	if err := uc.repo.SaveState(ctx, repository.SaveStateOptions{State: state, Provider: provider}); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignIn SaveState: %v", err)
		return auth.SignInOutput{}, err
	}

	return auth.SignInOutput{RedirectURL: p.AuthCodeURL(state)}, nil
}

// Callback completes the code flow and opens a session.
func (uc *implUseCase) Callback(ctx context.Context, input auth.CallbackInput) (auth.CallbackOutput, error) {
	p, ok := uc.providers[input.Provider]
	if !ok {
		return auth.CallbackOutput{}, auth.ErrUnknownProvider
	}

	if input.State == "" {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}
	issuedFor, err := uc.repo.ConsumeState(ctx, input.State)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.CallbackOutput{}, auth.ErrInvalidState
		}
		uc.l.Errorf(ctx, "auth.usecase.Callback ConsumeState: %v", err)
		return auth.CallbackOutput{}, err
	}
	if issuedFor != input.Provider {
		return auth.CallbackOutput{}, auth.ErrInvalidState
	}

	if input.Error != "" {
		return auth.CallbackOutput{}, fmt.Errorf("%w: %s", auth.ErrProviderDenied, input.Error)
	}
	if strings.TrimSpace(input.Code) == "" {
		return auth.CallbackOutput{}, fmt.Errorf("%w: missing code", auth.ErrExchangeFailed)
	}

	tok, err := p.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Callback Exchange(%s): %v", input.Provider, err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}
	if tok == nil || tok.AccessToken == "" {
		return auth.CallbackOutput{}, fmt.Errorf("%w: empty access token", auth.ErrExchangeFailed)
	}

	info, err := p.FetchUser(ctx, tok)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Callback FetchUser(%s): %v", input.Provider, err)
		return auth.CallbackOutput{}, fmt.Errorf("%w: %v", auth.ErrProfileFetch, err)
	}

	s, err := uc.repo.CreateSession(ctx, repository.CreateSessionOptions{
		Provider:    input.Provider,
		AccessToken: tok.AccessToken,
		User: auth.User{
			ID:    info.ID,
			Name:  info.Name,
			Email: info.Email,
			Image: info.Image,
		},
		CreatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Callback CreateSession: %v", err)
		return auth.CallbackOutput{}, err
	}

	uc.l.Infof(ctx, "auth.usecase.Callback: session opened for provider=%s user=%s", s.Provider, s.User.ID)
	return auth.CallbackOutput{Session: s}, nil
}
