package handlers_test

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}
func (m *MockWalletService) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) ListTransactions(ctx context.Context, walletID string, filter domain.TransactionFilter) (domain.TransactionView, error) {
	args := m.Called(ctx, walletID, filter)
	return args.Get(0).(domain.TransactionView), args.Error(1)
}
func (m *MockWalletService) ListReceipts(ctx context.Context, walletID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}
func (m *MockWalletService) SetBudget(ctx context.Context, walletID string, req dto.SetBudgetRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) RecordTransaction(ctx context.Context, walletID string, req dto.RecordTransactionRequest) (*domain.Transaction, *domain.Wallet, error) {
	args := m.Called(ctx, walletID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Wallet), args.Error(2)
}
func (m *MockWalletService) AddReceipt(ctx context.Context, walletID string, req dto.AddReceiptRequest) (*domain.Receipt, error) {
	args := m.Called(ctx, walletID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) SelectWallet(ctx context.Context, sessionID string, walletID string) (*domain.Session, *domain.Wallet, error) {
	args := m.Called(ctx, sessionID, walletID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.Get(1).(*domain.Wallet), args.Error(2)
}
func (m *MockSessionService) RequireSelectedWallet(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Status(ctx context.Context, sessionID string) (string, domain.ReportStatus, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Get(1).(domain.ReportStatus), args.Error(2)
}
func (m *MockReportService) Generate(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletReport), args.Error(1)
}
func (m *MockReportService) Preview(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletReport), args.Error(1)
}
func (m *MockReportService) Print(ctx context.Context, sessionID string) (*domain.WalletReport, []byte, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.WalletReport), args.Get(1).([]byte), args.Error(2)
}
func (m *MockReportService) Submit(ctx context.Context, sessionID string) (*domain.WalletReport, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletReport), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)
