package repositories

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// SessionRepository stores per-user view state
type SessionRepository interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByID retrieves a session. Returns apperrors.ErrNotFound for unknown ids.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// UpdateSelectedWallet records which wallet the session has open.
	UpdateSelectedWallet(ctx context.Context, sessionID string, walletID string) (*domain.Session, error)
}
