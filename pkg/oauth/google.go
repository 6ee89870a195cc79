package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleScopes grants calendar write access on top of the identity scopes.
var GoogleScopes = []string{
	"openid",
	"email",
	"profile",
	"https://www.googleapis.com/auth/calendar",
}

type googleProvider struct {
	base
}

// NewGoogle creates the Google provider.
func NewGoogle(cfg Config) (Provider, error) {
	b, err := newBase(ProviderGoogle, cfg, google.Endpoint, GoogleScopes)
	if err != nil {
		return nil, err
	}
	return &googleProvider{base: b}, nil
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (p *googleProvider) FetchUser(ctx context.Context, tok *oauth2.Token) (UserInfo, error) {
	opts := []option.ClientOption{option.WithHTTPClient(p.client(ctx, tok))}
	if p.cfg.APIBaseURL != "" {
		opts = append(opts, option.WithEndpoint(p.cfg.APIBaseURL))
	}

	svc, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProfileRequest, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProfileRequest, err)
	}

	return UserInfo{
		ID:    info.Id,
		Name:  info.Name,
		Email: info.Email,
		Image: info.Picture,
	}, nil
}
