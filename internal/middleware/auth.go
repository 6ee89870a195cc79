package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/internal/model"
)

const scopeKey = "scope"

// Auth attaches the caller's session scope when the session cookie is valid.
// Requests without a session pass through with no scope; handlers decide
// whether that is an error.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.sessionIDFromCookie(c)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		s, err := m.sessions.GetSession(ctx, id)
		if err != nil {
			if !errors.Is(err, auth.ErrSessionNotFound) {
				m.l.Warnf(ctx, "middleware.Auth GetSession: %v", err)
			}
			c.Next()
			return
		}

		SetScope(c, model.Scope{
			SessionID:   s.ID,
			Provider:    s.Provider,
			UserID:      s.User.ID,
			Username:    s.User.Name,
			Email:       s.User.Email,
			AccessToken: s.AccessToken,
		})
		c.Next()
	}
}

// SetScope attaches sc to the request.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
