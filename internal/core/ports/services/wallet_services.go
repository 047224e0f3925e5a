package services

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
)

// WalletReaderSvc defines read operations for wallets and their ledgers
type WalletReaderSvc interface {
	// ListWallets returns the ten month-wallets in month order.
	ListWallets(ctx context.Context) ([]domain.Wallet, error)

	// GetWallet retrieves a wallet by id.
	GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error)

	// ListTransactions projects the wallet's ledger through filter.
	ListTransactions(ctx context.Context, walletID string, filter domain.TransactionFilter) (domain.TransactionView, error)

	// ListReceipts returns the wallet's receipts oldest first.
	ListReceipts(ctx context.Context, walletID string) ([]domain.Receipt, error)
}

// WalletWriterSvc defines the validated entry workflows that mutate a wallet
type WalletWriterSvc interface {
	// SetBudget validates the budget form and replaces the wallet's beginning cash.
	SetBudget(ctx context.Context, walletID string, req dto.SetBudgetRequest) (*domain.Wallet, error)

	// RecordTransaction validates the entry form, appends the transaction and updates totals.
	RecordTransaction(ctx context.Context, walletID string, req dto.RecordTransactionRequest) (*domain.Transaction, *domain.Wallet, error)

	// AddReceipt validates the receipt form and files it under the wallet.
	AddReceipt(ctx context.Context, walletID string, req dto.AddReceiptRequest) (*domain.Receipt, error)
}

// WalletSvcFacade combines all wallet-related service interfaces
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
