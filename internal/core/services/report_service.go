package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/utils/reportexport"
)

// reportAction names a gateway round trip held in inFlight.
type reportAction int

const (
	actionGenerate reportAction = iota
	actionSubmit
)

// reportService implements the generate -> preview/print -> submit workflow.
// Status changes are serialized by mu; gateway calls run outside it, guarded
// per wallet by inFlight. In single mode a submit and a generate for
// different wallets never overlap, so a submit's report cannot be cleared
// after the gateway has accepted it.
type reportService struct {
	BaseService
	sessionRepo portsrepo.SessionRepository
	walletRepo  portsrepo.WalletRepositoryFacade
	reportRepo  portsrepo.ReportStateRepository
	gateway     gateways.ReportGateway
	mode        domain.ReportStateMode

	mu       sync.Mutex
	inFlight map[string]reportAction
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportStateMode selects how many wallets may hold a generated report.
func WithReportStateMode(mode domain.ReportStateMode) ReportServiceOption {
	return func(s *reportService) {
		if mode != "" {
			s.mode = mode
		}
	}
}

// WithReportBaseService sets the embedded BaseService, mainly to pin the clock.
func WithReportBaseService(base BaseService) ReportServiceOption {
	return func(s *reportService) {
		s.BaseService = base
	}
}

// NewReportService creates a new report service. The default state mode is domain.ReportStateSingle.
func NewReportService(
	sessionRepo portsrepo.SessionRepository,
	walletRepo portsrepo.WalletRepositoryFacade,
	reportRepo portsrepo.ReportStateRepository,
	gateway gateways.ReportGateway,
	options ...ReportServiceOption,
) portssvc.ReportSvcFacade {
	svc := &reportService{
		sessionRepo: sessionRepo,
		walletRepo:  walletRepo,
		reportRepo:  reportRepo,
		gateway:     gateway,
		mode:        domain.ReportStateSingle,
		inFlight:    make(map[string]reportAction),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) Status(ctx context.Context, sessionID string) (string, domain.ReportStatus, error) {
	walletID, err := s.selectedWallet(ctx, sessionID)
	if err != nil {
		return "", "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	status, err := s.statusLocked(ctx, walletID)
	return walletID, status, err
}

func (s *reportService) Generate(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	walletID, err := s.selectedWallet(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	release, err := s.acquire(ctx, walletID, actionGenerate, func(status domain.ReportStatus) error {
		if status == domain.ReportSubmitted {
			return apperrors.ErrReportAlreadySubmitted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := s.buildReport(ctx, walletID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.GenerateReport(ctx, *report); err != nil {
		s.LogWarn(ctx, "Report generation aborted",
			slog.String("wallet_id", walletID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("generate report for wallet %s: %w", walletID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == domain.ReportStateSingle {
		if err := s.reportRepo.ClearGeneratedExcept(ctx, walletID); err != nil {
			s.LogError(ctx, err, "Failed to clear generated reports", slog.String("wallet_id", walletID))
			return nil, err
		}
	}
	if err := s.reportRepo.SaveReport(ctx, *report); err != nil {
		s.LogError(ctx, err, "Failed to save report", slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Report generated",
		slog.String("wallet_id", walletID),
		slog.String("mode", string(s.mode)),
		slog.Int("income", len(report.Income)),
		slog.Int("expenses", len(report.Expenses)))
	return report, nil
}

func (s *reportService) Preview(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	walletID, err := s.selectedWallet(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.viewable(ctx, walletID)
}

func (s *reportService) Print(ctx context.Context, sessionID string) (*domain.WalletReport, []byte, error) {
	walletID, err := s.selectedWallet(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	report, err := s.viewable(ctx, walletID)
	if err != nil {
		return nil, nil, err
	}

	data, err := reportexport.RenderXLSX(report)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report workbook", slog.String("wallet_id", walletID))
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to render report", err)
	}

	s.LogInfo(ctx, "Report printed", slog.String("wallet_id", walletID), slog.Int("bytes", len(data)))
	return report, data, nil
}

func (s *reportService) Submit(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	walletID, err := s.selectedWallet(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	release, err := s.acquire(ctx, walletID, actionSubmit, submittable)
	if err != nil {
		return nil, err
	}
	defer release()

	report, err := s.reportRepo.FindReport(ctx, walletID)
	if err != nil {
		return nil, err
	}

	if err := s.gateway.SubmitReport(ctx, *report); err != nil {
		s.LogWarn(ctx, "Report submission aborted",
			slog.String("wallet_id", walletID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("submit report for wallet %s: %w", walletID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	status, err := s.statusLocked(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if err := submittable(status); err != nil {
		return nil, err
	}

	submittedAt := s.now()
	report.Status = domain.ReportSubmitted
	report.SubmittedAt = &submittedAt
	if err := s.reportRepo.SaveReport(ctx, *report); err != nil {
		s.LogError(ctx, err, "Failed to save report", slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Report submitted", slog.String("wallet_id", walletID))
	return report, nil
}

func submittable(status domain.ReportStatus) error {
	switch {
	case status == domain.ReportSubmitted:
		return apperrors.ErrReportAlreadySubmitted
	case !status.CanSubmit():
		return apperrors.ErrReportNotGenerated
	}
	return nil
}

func (s *reportService) selectedWallet(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !session.HasSelection() {
		return "", apperrors.ErrNoWalletSelected
	}
	return session.SelectedWalletID, nil
}

// statusLocked must be called with mu held.
func (s *reportService) statusLocked(ctx context.Context, walletID string) (domain.ReportStatus, error) {
	report, err := s.reportRepo.FindReport(ctx, walletID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.ReportNotGenerated, nil
	}
	if err != nil {
		return "", err
	}
	return report.Status, nil
}

// acquire checks the wallet's status with check and marks the wallet busy
// with action. The returned func clears the mark.
func (s *reportService) acquire(ctx context.Context, walletID string, action reportAction, check func(domain.ReportStatus) error) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[walletID]; busy {
		return nil, apperrors.ErrReportInProgress
	}
	if s.mode == domain.ReportStateSingle && s.conflictsLocked(walletID, action) {
		return nil, apperrors.ErrReportInProgress
	}
	status, err := s.statusLocked(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if err := check(status); err != nil {
		return nil, err
	}

	s.inFlight[walletID] = action
	return func() {
		s.mu.Lock()
		delete(s.inFlight, walletID)
		s.mu.Unlock()
	}, nil
}

// conflictsLocked reports whether another wallet holds the opposite action.
// It must be called with mu held.
func (s *reportService) conflictsLocked(walletID string, action reportAction) bool {
	for id, other := range s.inFlight {
		if id != walletID && other != action {
			return true
		}
	}
	return false
}

func (s *reportService) viewable(ctx context.Context, walletID string) (*domain.WalletReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, err := s.reportRepo.FindReport(ctx, walletID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrReportNotGenerated
	}
	if err != nil {
		return nil, err
	}
	if !report.Status.CanView() {
		return nil, apperrors.ErrReportNotGenerated
	}
	return report, nil
}

// buildReport snapshots the wallet's totals, ledger and receipts.
func (s *reportService) buildReport(ctx context.Context, walletID string) (*domain.WalletReport, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	txns, err := s.walletRepo.ListTransactionsByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("list transactions for report: %w", err)
	}
	receipts, err := s.walletRepo.ListReceiptsByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("list receipts for report: %w", err)
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}

	view := ProjectTransactions(walletID, txns, domain.FilterAll)
	return &domain.WalletReport{
		WalletID:      wallet.WalletID,
		WalletName:    wallet.Name,
		YearMonth:     wallet.YearMonth,
		BeginningCash: wallet.BeginningCash,
		TotalIncome:   wallet.TotalIncome,
		TotalExpenses: wallet.TotalExpenses,
		EndingCash:    wallet.EndingCash,
		Income:        view.Income,
		Expenses:      view.Expenses,
		Receipts:      receipts,
		Status:        domain.ReportGenerated,
		GeneratedAt:   s.now(),
	}, nil
}
