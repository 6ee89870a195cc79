package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-event-creator/internal/auth"
	"calendar-event-creator/internal/middleware"
	"calendar-event-creator/pkg/response"
)

// Providers godoc
// @Summary     List sign-in providers
// @Tags        Auth
// @Produce     json
// @Success     200 {array} providerResp
// @Router      /auth/providers [GET]
func (h *handler) Providers(c *gin.Context) {
	response.OK(c, h.newProvidersResp(h.uc.Providers(c.Request.Context())))
}

// SignIn godoc
// @Summary     Start sign-in
// @Description Redirects to the provider's consent page.
// @Tags        Auth
// @Param       provider path string true "google or github"
// @Success     302 {string} string "Redirect"
// @Failure     404 {object} response.Resp "Unknown provider"
// @Router      /auth/signin/{provider} [GET]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SignIn(ctx, c.Param("provider"))
	if err != nil {
		h.l.Warnf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, output.RedirectURL)
}

// Callback godoc
// @Summary     Complete sign-in
// @Description OAuth redirect target. Opens a session, sets the session cookie and redirects home.
// @Tags        Auth
// @Param       provider path  string true  "google or github"
// @Param       state    query string true  "state issued by /auth/signin"
// @Param       code     query string false "authorization code"
// @Param       error    query string false "provider error"
// @Success     302 {string} string "Redirect"
// @Failure     400 {object} response.Resp "Invalid or expired state"
// @Failure     403 {object} response.Resp "Denied by the user"
// @Failure     502 {object} response.Resp "Provider failure"
// @Router      /auth/callback/{provider} [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, errInvalidState, nil)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput(c.Param("provider")))
	if err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if err := h.cookies.SetSessionCookie(c, output.Session.ID); err != nil {
		h.l.Errorf(ctx, "SetSessionCookie: %v", err)
		_ = h.uc.SignOut(ctx, output.Session.ID)
		response.Error(c, errSessionFailed, nil)
		return
	}

	c.Redirect(http.StatusFound, h.redirectURL)
}

// Session godoc
// @Summary     Current session
// @Description Returns the signed-in user, or an empty object.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.OK(c, sessionResp{})
		return
	}

	s, err := h.uc.GetSession(ctx, sc.SessionID)
	if err != nil {
		if !errors.Is(err, auth.ErrSessionNotFound) {
			h.l.Errorf(ctx, "uc.GetSession: %v", err)
		}
		response.OK(c, sessionResp{})
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// SignOut godoc
// @Summary     Sign out
// @Description Ends the session and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	if sc, ok := middleware.GetScope(c); ok {
		if err := h.uc.SignOut(ctx, sc.SessionID); err != nil {
			h.l.Errorf(ctx, "uc.SignOut: %v", err)
			response.Error(c, h.mapError(err), nil)
			return
		}
	}

	h.cookies.ClearSessionCookie(c)
	response.OK(c, nil)
}
