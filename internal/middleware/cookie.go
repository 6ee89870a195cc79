package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie writes the sealed session id as an HttpOnly cookie.
func (m Middleware) SetSessionCookie(c *gin.Context, sessionID string) error {
	sealed, err := m.encrypter.Encrypt(sessionID)
	if err != nil {
		return err
	}

	c.SetSameSite(sameSite(m.cookieConfig.SameSite))
	c.SetCookie(
		m.cookieConfig.Name,
		sealed,
		m.cookieConfig.MaxAge,
		m.cookieConfig.Path,
		m.cookieConfig.Domain,
		m.cookieConfig.Secure,
		true,
	)
	return nil
}

// ClearSessionCookie expires the session cookie.
func (m Middleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(sameSite(m.cookieConfig.SameSite))
	c.SetCookie(m.cookieConfig.Name, "", -1, m.cookieConfig.Path, m.cookieConfig.Domain, m.cookieConfig.Secure, true)
}

// sessionIDFromCookie opens the session cookie. A missing or tampered
// cookie yields ok=false.
func (m Middleware) sessionIDFromCookie(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(m.cookieConfig.Name)
	if err != nil || raw == "" {
		return "", false
	}

	id, err := m.encrypter.Decrypt(raw)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.sessionIDFromCookie: %v", err)
		return "", false
	}
	return id, true
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}
