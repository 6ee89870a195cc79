package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"calendar-event-creator/internal/auth"
	authHTTP "calendar-event-creator/internal/auth/delivery/http"
	authRepo "calendar-event-creator/internal/auth/repository/memory"
	authUC "calendar-event-creator/internal/auth/usecase"
	eventHTTP "calendar-event-creator/internal/event/delivery/http"
	eventUC "calendar-event-creator/internal/event/usecase"
	"calendar-event-creator/internal/middleware"
)

// newAuthUseCase builds the session store and the sign-in flow.
func (srv *HTTPServer) newAuthUseCase() auth.UseCase {
	repo := authRepo.New(srv.l, authRepo.Options{
		SessionTTL:  srv.cfg.Session.TTL,
		StateTTL:    srv.cfg.Session.StateTTL,
		MaxSessions: srv.cfg.Session.MaxSessions,
	})
	return authUC.New(srv.l, repo, srv.providers)
}

func (srv *HTTPServer) newMiddleware(sessions middleware.SessionReader) middleware.Middleware {
	return middleware.New(srv.l, sessions, srv.cfg.Session.Cookie, srv.encrypter, srv.cfg.RateLimit)
}

// setupAuthDomain registers /auth/*.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup, uc auth.UseCase, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, uc, mw, srv.cfg.Session.RedirectURL)
	authHTTP.RegisterRoutes(rg, h, mw)

	for _, p := range uc.Providers(ctx) {
		srv.l.Infof(ctx, "Auth provider enabled: %s", p.ID)
	}
}

// setupEventDomain registers /api/v1/events and /api/v1/timezones.
func (srv *HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := eventUC.New(srv.l, srv.calendar, srv.catalog, srv.now, eventUC.Options{
		CalendarID: srv.cfg.GoogleCalendar.CalendarID,
	})
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, mw)

	if fixed := srv.catalog.Fixed(); fixed != "" {
		srv.l.Infof(ctx, "Event domain registered, timezone pinned to %s", fixed)
	} else {
		srv.l.Infof(ctx, "Event domain registered with %d timezones", len(srv.catalog.Zones()))
	}
}
