package http

import (
	"calendar-event-creator/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sign-in flow and session endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/providers", h.Providers)
	rg.GET("/signin/:provider", mw.RateLimit(), h.SignIn)
	rg.GET("/callback/:provider", mw.RateLimit(), h.Callback)
	rg.GET("/session", mw.Auth(), h.Session)
	rg.POST("/signout", mw.Auth(), h.SignOut)
}
