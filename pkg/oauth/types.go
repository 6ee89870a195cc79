package oauth

import (
	"net/http"
)

const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// Config holds the credentials of a single OAuth application.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// AuthURL and TokenURL override the provider's endpoint (tests, proxies).
	AuthURL  string
	TokenURL string
	// APIBaseURL overrides the profile API root.
	APIBaseURL string
	// HTTPClient is used for the token exchange and profile calls.
	HTTPClient *http.Client
}

// UserInfo is the provider profile kept in the session.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}
