package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSimulatedAcceptsAnyCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"typical", "test@example.com", "password123"},
		{"empty", "", ""},
		{"garbage", "???", "   "},
	}

	a := NewSimulated(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := a.Authenticate(context.Background(), tt.email, tt.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Email != tt.email {
				t.Errorf("Result.Email = %q, want %q", res.Email, tt.email)
			}
			if res.AcceptedAt.IsZero() {
				t.Error("expected AcceptedAt to be set")
			}
		})
	}
}

func TestSimulatedWaitsForDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	a := NewSimulated(delay)

	start := time.Now()
	if _, err := a.Authenticate(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("returned after %v, expected at least %v", elapsed, delay)
	}
}

func TestSimulatedHonorsCancellation(t *testing.T) {
	a := NewSimulated(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := a.Authenticate(ctx, "a@b.c", "pw")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestSimulatedZeroDelayCancelledContext(t *testing.T) {
	a := NewSimulated(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.Authenticate(ctx, "a@b.c", "pw"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewSimulatedClampsNegativeDelay(t *testing.T) {
	if d := NewSimulated(-time.Second).Delay(); d != 0 {
		t.Errorf("Delay() = %v, want 0", d)
	}
	if d := NewSimulated(DefaultDelay).Delay(); d != time.Second {
		t.Errorf("Delay() = %v, want 1s", d)
	}
}

func TestAuthenticatorFunc(t *testing.T) {
	var gotEmail, gotPassword string
	var a Authenticator = AuthenticatorFunc(func(ctx context.Context, email, password string) (Result, error) {
		gotEmail, gotPassword = email, password
		return Result{Email: email}, nil
	})

	if _, err := a.Authenticate(context.Background(), "x@y.z", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotEmail != "x@y.z" || gotPassword != "secret" {
		t.Errorf("func called with (%q, %q)", gotEmail, gotPassword)
	}
}
