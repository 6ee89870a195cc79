package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-event-creator/config"
	"calendar-event-creator/pkg/encrypter"
	"calendar-event-creator/pkg/eventtime"
	"calendar-event-creator/pkg/gcalendar"
	"calendar-event-creator/pkg/log"
	"calendar-event-creator/pkg/oauth"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	cfg       *config.Config
	calendar  gcalendar.ICalendar
	providers []oauth.Provider
	encrypter encrypter.Encrypter
	catalog   *eventtime.Catalog
	now       func() time.Time
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// App carries the session, cookie and rate limit settings.
	App *config.Config

	Calendar  gcalendar.ICalendar
	Providers []oauth.Provider
	Encrypter encrypter.Encrypter
	Catalog   *eventtime.Catalog
	// Now is the clock used for "today"; nil means time.Now.
	Now func() time.Time
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.App,
		calendar:    cfg.Calendar,
		providers:   cfg.Providers,
		encrypter:   cfg.Encrypter,
		catalog:     cfg.Catalog,
		now:         now,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.calendar == nil {
		return errors.New("calendar client is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.catalog == nil {
		return errors.New("timezone catalog is required")
	}
	if len(srv.providers) == 0 {
		return errors.New("at least one sign-in provider is required")
	}
	return nil
}
