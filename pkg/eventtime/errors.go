package eventtime

import "errors"

var (
	// ErrInvalidInput covers malformed times, unknown timezones and impossible dates.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPastDate is returned when the calendar date precedes today in the target zone.
	ErrPastDate = errors.New("date is in the past")
)
