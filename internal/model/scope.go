package model

// Scope is the signed-in caller attached to a request by the auth middleware.
// The zero value means no active session.
type Scope struct {
	SessionID   string
	Provider    string
	UserID      string
	Username    string
	Email       string
	AccessToken string `json:"-"`
}

// Authenticated reports whether the scope carries a provider access token.
func (s Scope) Authenticated() bool {
	return s.AccessToken != ""
}
