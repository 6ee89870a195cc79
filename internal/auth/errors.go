package auth

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown sign-in provider")
	ErrInvalidState    = errors.New("invalid or expired sign-in state")
	ErrProviderDenied  = errors.New("sign-in was denied by the provider")
	ErrExchangeFailed  = errors.New("failed to exchange authorization code")
	ErrProfileFetch    = errors.New("failed to fetch user profile")
	ErrSessionNotFound = errors.New("session not found")
)
