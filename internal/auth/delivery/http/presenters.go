package http

import (
	"calendar-event-creator/internal/auth"
	"calendar-event-creator/pkg/response"
)

// --- Request DTOs ---

type callbackReq struct {
	State string `form:"state"`
	Code  string `form:"code"`
	Error string `form:"error"`
}

func (r callbackReq) toInput(provider string) auth.CallbackInput {
	return auth.CallbackInput{
		Provider: provider,
		State:    r.State,
		Code:     r.Code,
		Error:    r.Error,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// sessionResp mirrors the web client's getSession(): an empty object when
// signed out. The access token is never returned.
type sessionResp struct {
	User     *userResp          `json:"user,omitempty"`
	Provider string             `json:"provider,omitempty"`
	Expires  *response.DateTime `json:"expires,omitempty" swaggertype:"string"`
}

func (h *handler) newSessionResp(s auth.Session) sessionResp {
	expires := response.DateTime(s.ExpiresAt)
	return sessionResp{
		User: &userResp{
			ID:    s.User.ID,
			Name:  s.User.Name,
			Email: s.User.Email,
			Image: s.User.Image,
		},
		Provider: s.Provider,
		Expires:  &expires,
	}
}

type providerResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SignInURL string `json:"signin_url"`
}

func (h *handler) newProvidersResp(ps []auth.ProviderInfo) []providerResp {
	out := make([]providerResp, len(ps))
	for i, p := range ps {
		out[i] = providerResp{ID: p.ID, Name: p.Name, SignInURL: "/auth/signin/" + p.ID}
	}
	return out
}
