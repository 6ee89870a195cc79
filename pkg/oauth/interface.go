package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// Provider drives the authorization code flow for one identity provider.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUser(ctx context.Context, tok *oauth2.Token) (UserInfo, error)
}
