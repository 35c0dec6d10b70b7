package model

import "time"

// State is the authentication state of a session
type State int

const (
	StateUnauthenticated State = iota // Initial state, no identity
	StateAuthenticated                // Identity captured by a successful sign-in
)

// String returns the state name used in logs
func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is the in-memory record of who is signed in.
// The zero value is an unauthenticated session with an empty identity.
type Session struct {
	ID        string    // per-login correlation ID, empty when signed out
	State     State     // current authentication state
	Identity  Identity  // credentials captured at sign-in
	StartedAt time.Time // when the sign-in completed
}

// Authenticated reports whether the session holds a signed-in identity
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated
}
