package repository

import (
	"time"

	"calendar-event-creator/internal/auth"
)

// CreateSessionOptions holds parameters for a new session.
type CreateSessionOptions struct {
	Provider    string
	AccessToken string
	User        auth.User
	CreatedAt   time.Time
}

// SaveStateOptions holds a freshly issued OAuth state.
type SaveStateOptions struct {
	State    string
	Provider string
}
