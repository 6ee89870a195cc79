package middleware

import (
	"context"

	"calendar-event-creator/config"
	"calendar-event-creator/internal/auth"
	"calendar-event-creator/pkg/encrypter"
	"calendar-event-creator/pkg/log"
)

// SessionReader resolves a session id to the signed-in session.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (auth.Session, error)
}

type Middleware struct {
	l            log.Logger
	sessions     SessionReader
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter
	limiter      *rateLimiter
}

func New(l log.Logger, sessions SessionReader, cookieConfig config.CookieConfig, enc encrypter.Encrypter, rl config.RateLimitConfig) Middleware {
	m := Middleware{
		l:            l,
		sessions:     sessions,
		cookieConfig: cookieConfig,
		encrypter:    enc,
	}
	if rl.Enabled {
		m.limiter = newRateLimiter(rl.RequestsPerMin, rl.Burst, rl.MaxKeys)
	}
	return m
}
