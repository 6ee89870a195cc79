package config

import (
	"errors"
	"fmt"

	"calendar-event-creator/pkg/eventtime"
)

var (
	ErrInvalidPort      = errors.New("http_server.port must be positive")
	ErrMissingSecret    = errors.New("session secret is required (SESSION_SECRET)")
	ErrNoOAuthProvider  = errors.New("at least one OAuth provider must be configured")
	ErrInvalidTimezone  = errors.New("calendar.fixed_timezone is not a valid IANA timezone")
	ErrInvalidRateLimit = errors.New("rate_limit.requests_per_min must be positive when enabled")
)

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return ErrInvalidPort
	}
	if c.Session.Secret == "" {
		return ErrMissingSecret
	}
	if !c.OAuth.Google.Enabled() && !c.OAuth.GitHub.Enabled() {
		return ErrNoOAuthProvider
	}
	if c.Calendar.FixedTimezone != "" {
		if _, err := eventtime.LoadZone(c.Calendar.FixedTimezone); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Calendar.FixedTimezone)
		}
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}
