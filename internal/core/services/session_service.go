package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/google/uuid"
)

// sessionService tracks the wallet each portal session has open.
type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepository
	walletRepo  portsrepo.WalletReader
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo portsrepo.SessionRepository, walletRepo portsrepo.WalletReader) portssvc.SessionSvcFacade {
	return &sessionService{
		sessionRepo: sessionRepo,
		walletRepo:  walletRepo,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := domain.Session{
		SessionID: uuid.NewString(),
		CreatedAt: s.now(),
	}
	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save session")
		return nil, err
	}

	s.LogInfo(ctx, "Session created", slog.String("session_id", session.SessionID))
	return &session, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessionRepo.FindSessionByID(ctx, sessionID)
}

func (s *sessionService) SelectWallet(ctx context.Context, sessionID string, walletID string) (*domain.Session, *domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		s.LogWarn(ctx, "Wallet selection rejected",
			slog.String("session_id", sessionID),
			slog.String("wallet_id", walletID),
			slog.String("error", err.Error()))
		return nil, nil, err
	}

	session, err := s.sessionRepo.UpdateSelectedWallet(ctx, sessionID, walletID)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Wallet selected",
		slog.String("session_id", sessionID),
		slog.String("wallet_id", walletID))
	return session, wallet, nil
}

func (s *sessionService) RequireSelectedWallet(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !session.HasSelection() {
		return "", apperrors.ErrNoWalletSelected
	}
	return session.SelectedWalletID, nil
}
