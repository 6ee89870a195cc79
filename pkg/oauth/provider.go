package oauth

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// base carries what both providers share.
type base struct {
	name string
	conf *oauth2.Config
	cfg  Config
}

func newBase(name string, cfg Config, endpoint oauth2.Endpoint, defaultScopes []string) (base, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return base{}, ErrMissingCredentials
	}
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return base{
		name: name,
		cfg:  cfg,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
	}, nil
}

func (b base) Name() string {
	return b.name
}

func (b base) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return b.conf.Exchange(b.withClient(ctx), code)
}

// client returns an HTTP client that sends tok on every request.
func (b base) client(ctx context.Context, tok *oauth2.Token) *http.Client {
	return b.conf.Client(b.withClient(ctx), tok)
}

func (b base) withClient(ctx context.Context) context.Context {
	if b.cfg.HTTPClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, b.cfg.HTTPClient)
}
