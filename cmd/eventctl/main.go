package main

import (
	"fmt"
	"os"

	"calendar-event-creator/config"
	"calendar-event-creator/internal/cli"
	"calendar-event-creator/internal/event/usecase"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
	"calendar-event-creator/pkg/log"
	"calendar-event-creator/pkg/oauth"
)

func main() {
	// The CLI works without a full server config; only auth needs Google credentials.
	var (
		cfgCalendar config.CalendarConfig
		cfgGCal     config.GoogleCalendarConfig
		cfgGoogle   config.OAuthProviderConfig
	)
	if cfg, err := config.Load(); err == nil {
		cfgCalendar = cfg.Calendar
		cfgGCal = cfg.GoogleCalendar
		cfgGoogle = cfg.OAuth.Google
	}

	logger := log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     "production",
		Encoding: "console",
	})

	catalog, err := eventtime.NewCatalog(cfgCalendar.Timezones, cfgCalendar.FixedTimezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building timezone catalog: %v\n", err)
		os.Exit(cli.ExitError)
	}

	calendarClient := gcalendar.NewClient(gcalendar.ClientOptions{
		BaseURL: cfgGCal.BaseURL,
		Timeout: cfgGCal.Timeout,
	})

	deps := cli.Deps{
		Events: usecase.New(logger, calendarClient, catalog, nil, usecase.Options{
			CalendarID: cfgGCal.CalendarID,
		}),
	}

	if cfgGoogle.Enabled() {
		// The code is pasted back from the loopback redirect page.
		redirect := cfgGoogle.RedirectURL
		if redirect == "" {
			redirect = "http://localhost"
		}
		google, err := oauth.NewGoogle(oauth.Config{
			ClientID:     cfgGoogle.ClientID,
			ClientSecret: cfgGoogle.ClientSecret,
			RedirectURL:  redirect,
		})
		if err == nil {
			deps.Google = google
		}
	}

	cli.Execute(deps)
}
