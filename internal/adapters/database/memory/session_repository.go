package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
)

const (
	DefaultSessionTTL  = 12 * time.Hour
	DefaultMaxSessions = 10_000
)

// SessionRepository keeps sessions in memory. A session expires after ttl
// without use, and when maxSessions is reached the least recently used one
// is dropped to make room.
type SessionRepository struct {
	mu          sync.Mutex
	sessions    map[string]domain.Session
	lastSeen    map[string]time.Time
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// SessionRepositoryOption is a functional option for configuring the session store
type SessionRepositoryOption func(*SessionRepository)

// WithSessionTTL sets the idle lifetime of a session. Non-positive values keep the default.
func WithSessionTTL(ttl time.Duration) SessionRepositoryOption {
	return func(r *SessionRepository) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithMaxSessions caps the number of live sessions. Non-positive values keep the default.
func WithMaxSessions(n int) SessionRepositoryOption {
	return func(r *SessionRepository) {
		if n > 0 {
			r.maxSessions = n
		}
	}
}

// WithSessionClock overrides time.Now, mainly for tests.
func WithSessionClock(now func() time.Time) SessionRepositoryOption {
	return func(r *SessionRepository) {
		r.now = now
	}
}

// NewSessionRepository creates an empty session store.
func NewSessionRepository(opts ...SessionRepositoryOption) *SessionRepository {
	r := &SessionRepository{
		sessions:    make(map[string]domain.Session),
		lastSeen:    make(map[string]time.Time),
		ttl:         DefaultSessionTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ portsrepo.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if _, exists := r.sessions[session.SessionID]; !exists {
		r.evictExpiredLocked(now)
		if len(r.sessions) >= r.maxSessions {
			r.evictOldestLocked()
		}
	}
	r.sessions[session.SessionID] = session
	r.lastSeen[session.SessionID] = now
	return nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.liveLocked(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	return &s, nil
}

func (r *SessionRepository) UpdateSelectedWallet(ctx context.Context, sessionID string, walletID string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.liveLocked(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}
	s.SelectedWalletID = walletID
	r.sessions[sessionID] = s
	return &s, nil
}

// Len returns the number of sessions held, expired or not.
func (r *SessionRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// liveLocked returns the session and refreshes its last use, dropping it
// instead if it has expired.
func (r *SessionRepository) liveLocked(sessionID string) (domain.Session, bool) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, false
	}
	now := r.now()
	if now.Sub(r.lastSeen[sessionID]) > r.ttl {
		r.deleteLocked(sessionID)
		return domain.Session{}, false
	}
	r.lastSeen[sessionID] = now
	return s, true
}

func (r *SessionRepository) evictExpiredLocked(now time.Time) {
	for id, seen := range r.lastSeen {
		if now.Sub(seen) > r.ttl {
			r.deleteLocked(id)
		}
	}
}

func (r *SessionRepository) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	for id, seen := range r.lastSeen {
		if oldestID == "" || seen.Before(oldest) {
			oldestID, oldest = id, seen
		}
	}
	if oldestID != "" {
		r.deleteLocked(oldestID)
	}
}

func (r *SessionRepository) deleteLocked(sessionID string) {
	delete(r.sessions, sessionID)
	delete(r.lastSeen, sessionID)
}
