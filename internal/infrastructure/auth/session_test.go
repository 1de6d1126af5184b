package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kioko/vaultledger/internal/domain"
)

type manualClock struct {
	t time.Time
}

func (c *manualClock) Now() time.Time { return c.t }

func (c *manualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessionManager_Touch(t *testing.T) {
	clock := &manualClock{t: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}
	sessions := NewSessionManager(15*time.Minute, clock)

	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("first touch failed: %v", err)
	}

	clock.Advance(10 * time.Minute)
	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch within timeout failed: %v", err)
	}

	// Activity reset the window, so 10 more minutes is still fine.
	clock.Advance(10 * time.Minute)
	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch after sliding window failed: %v", err)
	}

	clock.Advance(16 * time.Minute)
	if err := sessions.Touch("op-1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	// The expired session was dropped; the next touch starts a new one.
	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch after expiry should start a new session: %v", err)
	}
}

func TestSessionManager_IndependentOperators(t *testing.T) {
	clock := &manualClock{t: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}
	sessions := NewSessionManager(15*time.Minute, clock)

	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch failed: %v", err)
	}

	clock.Advance(20 * time.Minute)
	if err := sessions.Touch("op-2"); err != nil {
		t.Fatalf("fresh operator should not inherit another's idle time: %v", err)
	}
	if err := sessions.Touch("op-1"); !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired for idle operator, got %v", err)
	}
}

func TestSessionManager_End(t *testing.T) {
	clock := &manualClock{t: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}
	sessions := NewSessionManager(15*time.Minute, clock)

	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	sessions.End("op-1")

	// After End the next touch is a fresh session, not a continuation.
	clock.Advance(time.Hour)
	if err := sessions.Touch("op-1"); err != nil {
		t.Fatalf("touch after End should start fresh: %v", err)
	}
}
