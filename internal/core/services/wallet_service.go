package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
	"github.com/SscSPs/pres_finance_portal/internal/utils/accounting"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// walletService implements the WalletSvcFacade interface
type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
	validate   *validator.Validate
}

// WalletServiceOption is a functional option for configuring the wallet service
type WalletServiceOption func(*walletService)

// WithWalletClock overrides the clock used for timestamps.
func WithWalletClock(now func() time.Time) WalletServiceOption {
	return func(s *walletService) {
		s.Now = now
	}
}

// NewWalletService creates a new wallet service with the provided options
func NewWalletService(repo portsrepo.WalletRepositoryFacade, options ...WalletServiceOption) portssvc.WalletSvcFacade {
	svc := &walletService{
		walletRepo: repo,
		validate:   newFormValidator(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure walletService implements the WalletSvcFacade interface
var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets")
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}

	s.LogDebug(ctx, "Wallets listed successfully", slog.Int("count", len(wallets)))
	return wallets, nil
}

func (s *walletService) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find wallet by ID",
				slog.String("wallet_id", walletID))
		}
		return nil, err // Propagate error (including NotFound)
	}
	return wallet, nil
}

func (s *walletService) ListTransactions(ctx context.Context, walletID string, filter domain.TransactionFilter) (domain.TransactionView, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return domain.TransactionView{}, err
	}

	txns, err := s.walletRepo.ListTransactionsByWallet(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("wallet_id", walletID))
		return domain.TransactionView{}, fmt.Errorf("failed to list transactions for wallet %s: %w", walletID, err)
	}

	view := ProjectTransactions(walletID, txns, filter)
	s.LogDebug(ctx, "Transactions projected",
		slog.String("wallet_id", walletID),
		slog.String("filter", string(filter)),
		slog.Int("income", len(view.Income)),
		slog.Int("expenses", len(view.Expenses)))
	return view, nil
}

func (s *walletService) ListReceipts(ctx context.Context, walletID string) ([]domain.Receipt, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}

	receipts, err := s.walletRepo.ListReceiptsByWallet(ctx, walletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list receipts",
			slog.String("wallet_id", walletID))
		return nil, fmt.Errorf("failed to list receipts for wallet %s: %w", walletID, err)
	}
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *walletService) SetBudget(ctx context.Context, walletID string, req dto.SetBudgetRequest) (*domain.Wallet, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}

	req.Normalize()
	fields, err := validateForm(s.validate, req)
	if err != nil {
		return nil, err
	}
	amount := parseAmountField(fields, "amount", req.Amount, budgetRule)
	if len(fields) > 0 {
		s.LogWarn(ctx, "Budget rejected", slog.String("wallet_id", walletID), slog.Any("fields", fields))
		return nil, validationFailure(fields)
	}

	wallet, err := s.walletRepo.SetBudget(ctx, walletID, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to set budget",
			slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget set successfully",
		slog.String("wallet_id", walletID),
		slog.String("beginning_cash", wallet.BeginningCash.String()),
		slog.String("ending_cash", wallet.EndingCash.String()))
	return wallet, nil
}

func (s *walletService) RecordTransaction(ctx context.Context, walletID string, req dto.RecordTransactionRequest) (*domain.Transaction, *domain.Wallet, error) {
	wallet, err := s.GetWallet(ctx, walletID)
	if err != nil {
		return nil, nil, err
	}

	req.Normalize()
	fields, err := validateForm(s.validate, req)
	if err != nil {
		return nil, nil, err
	}
	quantity := parseAmountField(fields, "quantity", req.Quantity, quantityRule)
	unitPrice := parseAmountField(fields, "unitPrice", req.UnitPrice, unitPriceRule)
	if len(fields) > 0 {
		s.LogWarn(ctx, "Transaction entry rejected",
			slog.String("wallet_id", walletID),
			slog.String("type", string(req.Type)),
			slog.Any("fields", fields))
		return nil, nil, validationFailure(fields)
	}

	// The validator already checked the layout
	date, _ := time.Parse(domain.DateLayout, req.Date)
	category := req.Category()

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		WalletID:      walletID,
		EventLabel:    wallet.Name,
		Description:   ComposeDescription(req.Quantity, category, req.Description),
		Category:      category,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Amount:        accounting.SignedAmount(unitPrice, quantity, req.Type),
		Date:          date,
		Type:          req.Type,
		CreatedAt:     s.now(),
	}
	if err := txn.Validate(); err != nil {
		return nil, nil, fmt.Errorf("built invalid transaction: %w", err)
	}

	updated, err := s.walletRepo.RecordTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction",
			slog.String("wallet_id", walletID),
			slog.String("transaction_id", txn.TransactionID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transaction recorded successfully",
		slog.String("wallet_id", walletID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
		slog.String("ending_cash", updated.EndingCash.String()))
	return &txn, updated, nil
}

func (s *walletService) AddReceipt(ctx context.Context, walletID string, req dto.AddReceiptRequest) (*domain.Receipt, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}

	req.Normalize()
	fields, err := validateForm(s.validate, req)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		s.LogWarn(ctx, "Receipt rejected", slog.String("wallet_id", walletID), slog.Any("fields", fields))
		return nil, validationFailure(fields)
	}

	date, _ := time.Parse(domain.DateLayout, req.Date)
	receipt := domain.Receipt{
		ReceiptID:   uuid.NewString(),
		WalletID:    walletID,
		Name:        req.Name,
		Description: req.Description,
		FileName:    req.FileName,
		Date:        date,
		CreatedAt:   s.now(),
	}

	if err := s.walletRepo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt",
			slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Receipt added successfully",
		slog.String("wallet_id", walletID),
		slog.String("receipt_id", receipt.ReceiptID))
	return &receipt, nil
}
