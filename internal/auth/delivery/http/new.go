package http

import (
	"github.com/gin-gonic/gin"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/pkg/log"
)

// sessionCookies writes and clears the session cookie.
type sessionCookies interface {
	SetSessionCookie(c *gin.Context, sessionID string) error
	ClearSessionCookie(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          auth.UseCase
	cookies     sessionCookies
	redirectURL string
}

// New creates a new HTTP handler for the auth domain. redirectURL is where
// the browser goes after sign-in.
func New(l log.Logger, uc auth.UseCase, cookies sessionCookies, redirectURL string) *handler {
	if redirectURL == "" {
		redirectURL = "/"
	}
	return &handler{
		l:           l,
		uc:          uc,
		cookies:     cookies,
		redirectURL: redirectURL,
	}
}
