package http

import (
	"errors"
	"net/http"

	"calendar-event-creator/internal/event"
	pkgErrors "calendar-event-creator/pkg/errors"
)

// User-facing messages.
const (
	MsgCreated         = "Event created successfully!"
	MsgLoginRequired   = "Please log in to create an event."
	MsgTitleRequired   = "Please enter a name for the event."
	MsgPastDate        = "Please choose today or a later date."
	MsgInvalidSchedule = "Please choose a valid date and time."
	MsgCreateFailed    = "Failed to create event."
	MsgCreateError     = "An error occurred while creating the event."
	MsgInvalidBody     = "Invalid request body."
)

var (
	errLoginRequired   = pkgErrors.NewHTTPError(http.StatusUnauthorized, MsgLoginRequired)
	errTitleRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, MsgTitleRequired)
	errPastDate        = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, MsgPastDate)
	errInvalidSchedule = pkgErrors.NewHTTPError(http.StatusBadRequest, MsgInvalidSchedule)
	errCreateFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, MsgCreateFailed)
	errCreateError     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, MsgCreateError)
	errInvalidBody     = pkgErrors.NewHTTPError(http.StatusBadRequest, MsgInvalidBody)
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrUnauthenticated):
		return errLoginRequired
	case errors.Is(err, event.ErrMissingTitle):
		return errTitleRequired
	case errors.Is(err, event.ErrPastDate):
		return errPastDate
	case errors.Is(err, event.ErrInvalidInput):
		return errInvalidSchedule
	case errors.Is(err, event.ErrRemoteRejected):
		return errCreateFailed
	case errors.Is(err, event.ErrNetworkFailure):
		return errCreateError
	default:
		return pkgErrors.ErrInternalServerError
	}
}
