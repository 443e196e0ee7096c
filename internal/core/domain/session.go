package domain

import "time"

// Session is the server-side record behind a bearer token.
type Session struct {
	Token     string
	UserID    string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type SessionUser struct {
	ID       string
	Username string
	Role     Role
}

// SessionState is the snapshot the access policy evaluates. Loading is
// set when the session backend could not answer; User is nil when no
// valid session exists.
type SessionState struct {
	Loading   bool
	User      *SessionUser
	LastError string
}
