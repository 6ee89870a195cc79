package oauth

import "errors"

var (
	ErrMissingCredentials = errors.New("oauth: client id and secret are required")
	ErrProfileRequest     = errors.New("oauth: profile request failed")
)
