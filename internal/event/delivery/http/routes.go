package http

import (
	"calendar-event-creator/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only event creation needs a session; the handler itself reports a missing one.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.Auth(), mw.RateLimit(), h.Create)
		events.POST("/preview", mw.RateLimit(), h.Preview)
		events.POST("/ics", mw.RateLimit(), h.ExportICS)
	}
	rg.GET("/timezones", h.ListTimezones)
}
