package event

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid event input")
	ErrPastDate        = errors.New("event date is in the past")
	ErrUnauthenticated = errors.New("no active session")
	ErrRemoteRejected  = errors.New("calendar rejected the event")
	ErrNetworkFailure  = errors.New("calendar could not be reached")

	ErrMissingTitle = fmt.Errorf("%w: title is required", ErrInvalidInput)
)
