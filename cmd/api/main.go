package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-event-creator/config"
	_ "calendar-event-creator/docs" // Swagger docs
	"calendar-event-creator/internal/httpserver"
	"calendar-event-creator/pkg/encrypter"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
	"calendar-event-creator/pkg/log"
	"calendar-event-creator/pkg/oauth"
)

// @title       Calendar Event Creator API
// @description Create one-hour Google Calendar events from a date, a time and an IANA timezone.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Event Creator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Sign-in providers
	providers, err := newProviders(cfg.OAuth)
	if err != nil {
		logger.Error(ctx, "Failed to initialize sign-in providers: ", err)
		os.Exit(1)
	}
	for _, p := range providers {
		logger.Infof(ctx, "Sign-in provider enabled: %s", p.Name())
	}

	// 4. Session cookie encryption
	enc, err := encrypter.New(cfg.Session.Secret)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		os.Exit(1)
	}

	// 5. Timezone catalog
	catalog, err := eventtime.NewCatalog(cfg.Calendar.Timezones, cfg.Calendar.FixedTimezone)
	if err != nil {
		logger.Error(ctx, "Failed to build timezone catalog: ", err)
		os.Exit(1)
	}
	if fixed := catalog.Fixed(); fixed != "" {
		logger.Infof(ctx, "Timezone pinned to %s", fixed)
	}

	// 6. Google Calendar client
	calendarClient := gcalendar.NewClient(gcalendar.ClientOptions{
		BaseURL: cfg.GoogleCalendar.BaseURL,
		Timeout: cfg.GoogleCalendar.Timeout,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		App:         cfg,
		Calendar:    calendarClient,
		Providers:   providers,
		Encrypter:   enc,
		Catalog:     catalog,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newProviders builds every provider whose credentials are configured.
func newProviders(cfg config.OAuthConfig) ([]oauth.Provider, error) {
	var providers []oauth.Provider

	if cfg.Google.Enabled() {
		p, err := oauth.NewGoogle(oauth.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
		})
		if err != nil {
			return nil, fmt.Errorf("google: %w", err)
		}
		providers = append(providers, p)
	}

	if cfg.GitHub.Enabled() {
		p, err := oauth.NewGitHub(oauth.Config{
			ClientID:     cfg.GitHub.ClientID,
			ClientSecret: cfg.GitHub.ClientSecret,
			RedirectURL:  cfg.GitHub.RedirectURL,
		})
		if err != nil {
			return nil, fmt.Errorf("github: %w", err)
		}
		providers = append(providers, p)
	}

	return providers, nil
}
