package http

import (
	"errors"
	"net/http"

	"calendar-event-creator/internal/auth"
	pkgErrors "calendar-event-creator/pkg/errors"
)

var (
	errUnknownProvider = pkgErrors.NewHTTPError(http.StatusNotFound, "Unknown sign-in provider.")
	errInvalidState    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Sign-in expired, please try again.")
	errDenied          = pkgErrors.NewHTTPError(http.StatusForbidden, "Sign-in was cancelled.")
	errSignInFailed    = pkgErrors.NewHTTPError(http.StatusBadGateway, "Sign-in failed, please try again.")
	errSessionFailed   = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not start a session.")
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrUnknownProvider):
		return errUnknownProvider
	case errors.Is(err, auth.ErrInvalidState):
		return errInvalidState
	case errors.Is(err, auth.ErrProviderDenied):
		return errDenied
	case errors.Is(err, auth.ErrExchangeFailed), errors.Is(err, auth.ErrProfileFetch):
		return errSignInFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
