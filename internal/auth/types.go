package auth

import "time"

// --- Domain Model ---

// User is the identity returned by the provider.
type User struct {
	ID    string
	Name  string
	Email string
	Image string
}

// Session binds a provider access token to a signed-in user.
type Session struct {
	ID          string
	Provider    string
	AccessToken string
	User        User
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// ProviderInfo describes an enabled sign-in provider.
type ProviderInfo struct {
	ID   string
	Name string
}

// --- UseCase Inputs ---

type CallbackInput struct {
	Provider string
	State    string
	Code     string
	// Error is the provider's error parameter, e.g. "access_denied".
	Error string
}

// --- UseCase Outputs ---

type SignInOutput struct {
	RedirectURL string
}

type CallbackOutput struct {
	Session Session
}
