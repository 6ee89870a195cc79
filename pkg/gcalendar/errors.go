package gcalendar

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken   = errors.New("access token is required")
	ErrRemoteRejected = errors.New("calendar API rejected the request")
	ErrNetworkFailure = errors.New("calendar API request could not be completed")
)

// RemoteError carries the status the Calendar API answered with.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrRemoteRejected, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemoteRejected
}
