// Package auth provides the credential check run when the sign-in form is submitted.
package auth

import (
	"context"
	"time"
)

// DefaultDelay is the simulated latency of a sign-in
const DefaultDelay = time.Second

// Result describes an accepted sign-in
type Result struct {
	Email      string
	AcceptedAt time.Time
}

// Authenticator checks a pair of credentials.
// Implementations may block; callers run them off the UI loop.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (Result, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface
type AuthenticatorFunc func(ctx context.Context, email, password string) (Result, error)

// Authenticate calls f(ctx, email, password)
func (f AuthenticatorFunc) Authenticate(ctx context.Context, email, password string) (Result, error) {
	return f(ctx, email, password)
}

// Simulated accepts every credential pair after a fixed delay
type Simulated struct {
	delay time.Duration
	now   func() time.Time
}

// NewSimulated creates a Simulated authenticator. A negative delay is treated as zero.
func NewSimulated(delay time.Duration) *Simulated {
	if delay < 0 {
		delay = 0
	}
	return &Simulated{delay: delay, now: time.Now}
}

// Delay returns the configured latency
func (s *Simulated) Delay() time.Duration {
	return s.delay
}

// Authenticate waits for the configured delay and accepts the credentials.
// It only fails when ctx is done before the delay elapses.
func (s *Simulated) Authenticate(ctx context.Context, email, password string) (Result, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return Result{Email: email, AcceptedAt: s.now()}, nil
}
