package auth

import (
	"sync"
	"time"

	"github.com/kioko/vaultledger/internal/domain"
	"github.com/kioko/vaultledger/internal/usecase"
)

// SessionManager enforces an inactivity timeout on operator sessions. Each
// authenticated request touches the session; a gap longer than the timeout
// expires it regardless of the token's own lifetime.
type SessionManager struct {
	timeout time.Duration
	clock   usecase.Clock

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(timeout time.Duration, clock usecase.Clock) *SessionManager {
	return &SessionManager{
		timeout:  timeout,
		clock:    clock,
		lastSeen: make(map[string]time.Time),
	}
}

// Touch records activity for the operator. The first touch starts the
// session. Returns ErrSessionExpired when the operator was idle past the
// timeout; the expired session is dropped so the operator can start a fresh
// one by logging in again.
func (m *SessionManager) Touch(operatorID string) error {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	last, ok := m.lastSeen[operatorID]
	if ok && now.Sub(last) > m.timeout {
		delete(m.lastSeen, operatorID)
		return domain.ErrSessionExpired
	}

	m.lastSeen[operatorID] = now
	return nil
}

// End drops the operator's session.
func (m *SessionManager) End(operatorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lastSeen, operatorID)
}
