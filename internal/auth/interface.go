package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// OAuth flow
	SignIn(ctx context.Context, provider string) (SignInOutput, error)
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// Session
	GetSession(ctx context.Context, sessionID string) (Session, error)
	SignOut(ctx context.Context, sessionID string) error
	Providers(ctx context.Context) []ProviderInfo
}
