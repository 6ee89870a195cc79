package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Auth
	Session SessionConfig
	OAuth   OAuthConfig

	// Calendar
	GoogleCalendar GoogleCalendarConfig
	Calendar       CalendarConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SessionConfig struct {
	Secret      string
	TTL         time.Duration
	StateTTL    time.Duration
	MaxSessions int
	// RedirectURL is where the browser lands after sign-in and sign-out.
	RedirectURL string
	Cookie      CookieConfig
}

type CookieConfig struct {
	Name     string
	Domain   string
	Path     string
	Secure   bool
	SameSite string
	MaxAge   int
}

type OAuthConfig struct {
	// CallbackBaseURL prefixes /auth/callback/{provider} when a provider has no redirect url.
	CallbackBaseURL string
	Google          OAuthProviderConfig
	GitHub          OAuthProviderConfig
}

type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether both credentials are present.
func (c OAuthProviderConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type GoogleCalendarConfig struct {
	BaseURL    string
	Timeout    time.Duration
	CalendarID string
}

type CalendarConfig struct {
	Timezones     []string
	FixedTimezone string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxKeys        int
}

// Load loads configuration using Viper.
// A .env file in the working directory is read first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Session
	cfg.Session.Secret = v.GetString("session.secret")
	if secret := v.GetString("session_secret"); secret != "" {
		cfg.Session.Secret = secret
	}
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.StateTTL = v.GetDuration("session.state_ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.RedirectURL = v.GetString("session.redirect_url")
	cfg.Session.Cookie = CookieConfig{
		Name:     v.GetString("session.cookie.name"),
		Domain:   v.GetString("session.cookie.domain"),
		Path:     v.GetString("session.cookie.path"),
		Secure:   v.GetBool("session.cookie.secure"),
		SameSite: v.GetString("session.cookie.same_site"),
		MaxAge:   int(cfg.Session.TTL / time.Second),
	}

	// OAuth providers; flat env names match the ones the web app used.
	cfg.OAuth.CallbackBaseURL = strings.TrimRight(v.GetString("oauth.callback_base_url"), "/")
	cfg.OAuth.Google = OAuthProviderConfig{
		ClientID:     firstNonEmpty(v.GetString("google_client_id"), v.GetString("oauth.google.client_id")),
		ClientSecret: firstNonEmpty(v.GetString("google_client_secret"), v.GetString("oauth.google.client_secret")),
		RedirectURL:  v.GetString("oauth.google.redirect_url"),
	}
	cfg.OAuth.GitHub = OAuthProviderConfig{
		ClientID:     firstNonEmpty(v.GetString("github_id"), v.GetString("oauth.github.client_id")),
		ClientSecret: firstNonEmpty(v.GetString("github_secret"), v.GetString("oauth.github.client_secret")),
		RedirectURL:  v.GetString("oauth.github.redirect_url"),
	}
	if cfg.OAuth.Google.RedirectURL == "" {
		cfg.OAuth.Google.RedirectURL = cfg.OAuth.CallbackBaseURL + "/auth/callback/google"
	}
	if cfg.OAuth.GitHub.RedirectURL == "" {
		cfg.OAuth.GitHub.RedirectURL = cfg.OAuth.CallbackBaseURL + "/auth/callback/github"
	}

	// Google Calendar
	cfg.GoogleCalendar.BaseURL = v.GetString("google_calendar.base_url")
	cfg.GoogleCalendar.Timeout = v.GetDuration("google_calendar.timeout")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	// Timezone catalog
	cfg.Calendar.Timezones = splitList(v.GetStringSlice("calendar.timezones"))
	cfg.Calendar.FixedTimezone = strings.TrimSpace(v.GetString("calendar.fixed_timezone"))

	// Rate limit
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxKeys = v.GetInt("rate_limit.max_keys")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.state_ttl", "10m")
	v.SetDefault("session.max_sessions", 10000)
	v.SetDefault("session.redirect_url", "/")
	v.SetDefault("session.cookie.name", "session")
	v.SetDefault("session.cookie.path", "/")
	v.SetDefault("session.cookie.secure", false)
	v.SetDefault("session.cookie.same_site", "lax")

	v.SetDefault("oauth.callback_base_url", "http://localhost:8080")

	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)
	v.SetDefault("rate_limit.burst", 5)
	v.SetDefault("rate_limit.max_keys", 10000)
}

// splitList flattens comma separated entries; env values arrive as one string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
