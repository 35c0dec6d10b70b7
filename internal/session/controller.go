// Package session holds the signed-in state and the dashboard counter.
//
// A Controller is owned by a single top-level model and passed down to the
// views that need it. Every operation is total: none of them can fail.
package session

import (
	"io"
	"log/slog"
	"time"

	"github.com/clive/counterdash/internal/model"
	"github.com/google/uuid"
)

// Controller owns the Session and the counter
type Controller struct {
	session model.Session
	count   int
	logger  *slog.Logger

	// Overridable for tests
	now   func() time.Time
	newID func() string
}

// NewController creates a controller in the unauthenticated state with a zero counter.
// A nil logger discards log output.
func NewController(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Login marks the session authenticated and stores the identity as given.
// There is no validation. Logging in again replaces the identity and keeps the counter.
func (c *Controller) Login(email, password string) {
	c.session = model.Session{
		ID:        c.newID(),
		State:     model.StateAuthenticated,
		Identity:  model.Identity{Email: email, Password: password},
		StartedAt: c.now(),
	}
	c.logger.Info("session started",
		"session_id", c.session.ID,
		"email", email,
	)
}

// Logout clears the identity, marks the session unauthenticated and resets the counter
func (c *Controller) Logout() {
	if c.session.Authenticated() {
		c.logger.Info("session ended",
			"session_id", c.session.ID,
			"duration", c.now().Sub(c.session.StartedAt).String(),
			"final_count", c.count,
		)
	}
	c.session = model.Session{}
	c.count = 0
}

// Increment adds one to the counter
func (c *Controller) Increment() {
	c.count++
	c.logCount("increment")
}

// Decrement subtracts one from the counter. There is no floor.
func (c *Controller) Decrement() {
	c.count--
	c.logCount("decrement")
}

// Reset sets the counter to zero
func (c *Controller) Reset() {
	c.count = 0
	c.logCount("reset")
}

func (c *Controller) logCount(op string) {
	c.logger.Debug("counter changed",
		"session_id", c.session.ID,
		"op", op,
		"count", c.count,
	)
}

// Authenticated reports whether a user is signed in
func (c *Controller) Authenticated() bool {
	return c.session.Authenticated()
}

// Identity returns the signed-in identity, empty when signed out
func (c *Controller) Identity() model.Identity {
	return c.session.Identity
}

// Count returns the current counter value
func (c *Controller) Count() int {
	return c.count
}

// Session returns a copy of the session record
func (c *Controller) Session() model.Session {
	return c.session
}
