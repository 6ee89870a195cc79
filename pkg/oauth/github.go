package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIBaseURL = "https://api.github.com"

var GitHubScopes = []string{"read:user"}

type githubProvider struct {
	base
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// NewGitHub creates the GitHub provider.
func NewGitHub(cfg Config) (Provider, error) {
	b, err := newBase(ProviderGitHub, cfg, github.Endpoint, GitHubScopes)
	if err != nil {
		return nil, err
	}
	return &githubProvider{base: b}, nil
}

func (p *githubProvider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state)
}

func (p *githubProvider) FetchUser(ctx context.Context, tok *oauth2.Token) (UserInfo, error) {
	apiBase := githubAPIBaseURL
	if p.cfg.APIBaseURL != "" {
		apiBase = strings.TrimRight(p.cfg.APIBaseURL, "/")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"/user", nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProfileRequest, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.client(ctx, tok).Do(req)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w: %v", ErrProfileRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("%w: status %d", ErrProfileRequest, resp.StatusCode)
	}

	var u githubUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return UserInfo{}, fmt.Errorf("%w: decode: %v", ErrProfileRequest, err)
	}

	name := u.Name
	if name == "" {
		name = u.Login
	}
	return UserInfo{
		ID:    strconv.FormatInt(u.ID, 10),
		Name:  name,
		Email: u.Email,
		Image: u.AvatarURL,
	}, nil
}
