package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-event-creator/internal/middleware"
	"calendar-event-creator/pkg/ics"
	"calendar-event-creator/pkg/response"
)

// Create godoc
// @Summary     Create a calendar event
// @Description Resolves the selected date, time and timezone into a one-hour window and writes it to the signed-in user's primary Google Calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event form"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Missing title or invalid date/time/timezone"
// @Failure     401  {object} response.Resp "No active session"
// @Failure     422  {object} response.Resp "Date is in the past"
// @Failure     502  {object} response.Resp "Calendar rejected the event"
// @Failure     503  {object} response.Resp "Calendar unreachable"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := middleware.GetScope(c)
	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OKWithMessage(c, MsgCreated, h.newCreateResp(output))
}

// Preview godoc
// @Summary     Preview an event window
// @Description Returns the UTC start and end the form would submit, without creating anything.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Date, time and timezone"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Invalid date/time/timezone"
// @Failure     422  {object} response.Resp "Date is in the past"
// @Router      /api/v1/events/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// ExportICS godoc
// @Summary     Download an event as iCalendar
// @Description Renders the resolved window as a .ics file.
// @Tags        Events
// @Accept      json
// @Produce     text/calendar
// @Param       body body createReq true "Event form"
// @Success     200  {string} string "iCalendar document"
// @Failure     400  {object} response.Resp "Missing title or invalid date/time/timezone"
// @Failure     422  {object} response.Resp "Date is in the past"
// @Router      /api/v1/events/ics [POST]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportICS(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, ics.ContentType, []byte(output.Content))
}

// ListTimezones godoc
// @Summary     List selectable timezones
// @Description Returns the timezone catalog with current labels and the form defaults.
// @Tags        Events
// @Produce     json
// @Success     200 {object} timezonesResp
// @Router      /api/v1/timezones [GET]
func (h *handler) ListTimezones(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTimezones(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTimezones: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTimezonesResp(output))
}
