package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GOOGLE_CLIENT_ID", "gid")
	t.Setenv("GOOGLE_CLIENT_SECRET", "gsecret")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d", cfg.HTTPServer.Port)
	}
	if cfg.Session.Secret != "s3cret" {
		t.Errorf("Session.Secret = %q", cfg.Session.Secret)
	}
	if cfg.Session.TTL != 24*time.Hour || cfg.Session.Cookie.MaxAge != 86400 {
		t.Errorf("unexpected session ttl: %v / %d", cfg.Session.TTL, cfg.Session.Cookie.MaxAge)
	}
	if !cfg.OAuth.Google.Enabled() || cfg.OAuth.GitHub.Enabled() {
		t.Errorf("unexpected providers: %+v", cfg.OAuth)
	}
	if cfg.OAuth.Google.RedirectURL != "http://localhost:8080/auth/callback/google" {
		t.Errorf("Google.RedirectURL = %q", cfg.OAuth.Google.RedirectURL)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("CalendarID = %q", cfg.GoogleCalendar.CalendarID)
	}
	if cfg.Calendar.FixedTimezone != "" || len(cfg.Calendar.Timezones) != 0 {
		t.Errorf("unexpected calendar config: %+v", cfg.Calendar)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("GITHUB_ID", "hid")
	t.Setenv("GITHUB_SECRET", "hsecret")
	t.Setenv("OAUTH_CALLBACK_BASE_URL", "https://events.example.com/")
	t.Setenv("CALENDAR_TIMEZONES", "UTC, Asia/Tokyo,Europe/Paris")
	t.Setenv("CALENDAR_FIXED_TIMEZONE", "Asia/Kolkata")
	t.Setenv("GOOGLE_CALENDAR_TIMEOUT", "5s")
	t.Setenv("HTTP_SERVER_PORT", "9090")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("Port = %d", cfg.HTTPServer.Port)
	}
	if cfg.OAuth.GitHub.ClientID != "hid" || cfg.OAuth.GitHub.ClientSecret != "hsecret" {
		t.Errorf("unexpected github config: %+v", cfg.OAuth.GitHub)
	}
	if cfg.OAuth.GitHub.RedirectURL != "https://events.example.com/auth/callback/github" {
		t.Errorf("GitHub.RedirectURL = %q", cfg.OAuth.GitHub.RedirectURL)
	}
	want := []string{"UTC", "Asia/Tokyo", "Europe/Paris"}
	if !reflect.DeepEqual(cfg.Calendar.Timezones, want) {
		t.Errorf("Timezones = %v, want %v", cfg.Calendar.Timezones, want)
	}
	if cfg.Calendar.FixedTimezone != "Asia/Kolkata" {
		t.Errorf("FixedTimezone = %q", cfg.Calendar.FixedTimezone)
	}
	if cfg.GoogleCalendar.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.GoogleCalendar.Timeout)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			Session:    SessionConfig{Secret: "s"},
			OAuth:      OAuthConfig{Google: OAuthProviderConfig{ClientID: "id", ClientSecret: "secret"}},
			RateLimit:  RateLimitConfig{Enabled: true, RequestsPerMin: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"valid", func(*Config) {}, nil},
		{"no port", func(c *Config) { c.HTTPServer.Port = 0 }, ErrInvalidPort},
		{"no secret", func(c *Config) { c.Session.Secret = "" }, ErrMissingSecret},
		{"no provider", func(c *Config) { c.OAuth.Google.ClientSecret = "" }, ErrNoOAuthProvider},
		{"bad fixed zone", func(c *Config) { c.Calendar.FixedTimezone = "Mars/Olympus" }, ErrInvalidTimezone},
		{"rate limit without rate", func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, ErrInvalidRateLimit},
		{"rate limit disabled", func(c *Config) { c.RateLimit = RateLimitConfig{} }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}
