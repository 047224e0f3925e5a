package services

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// SessionSvcFacade manages which wallet a portal user has open
type SessionSvcFacade interface {
	// CreateSession starts a session with no wallet selected.
	CreateSession(ctx context.Context) (*domain.Session, error)

	// GetSession retrieves a session by id.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// SelectWallet opens walletID in the session and returns the opened wallet.
	SelectWallet(ctx context.Context, sessionID string, walletID string) (*domain.Session, *domain.Wallet, error)

	// RequireSelectedWallet returns the open wallet id or apperrors.ErrNoWalletSelected.
	RequireSelectedWallet(ctx context.Context, sessionID string) (string, error)
}
