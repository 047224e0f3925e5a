package repositories

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// ListWallets returns every wallet in month order.
	ListWallets(ctx context.Context) ([]domain.Wallet, error)

	// FindWalletByID retrieves a wallet. Returns apperrors.ErrNotFound for unknown ids.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
}

// WalletWriter defines balance-changing operations. Implementations apply the
// accounting rules and persist the wallet in one step so totals never drift.
type WalletWriter interface {
	// SetBudget replaces the wallet's beginning cash.
	SetBudget(ctx context.Context, walletID string, amount decimal.Decimal) (*domain.Wallet, error)

	// RecordTransaction appends txn to its wallet's ledger and updates the wallet totals.
	RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Wallet, error)
}

// TransactionReader defines read operations for a wallet's ledger
type TransactionReader interface {
	// ListTransactionsByWallet returns the wallet's transactions oldest first.
	ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
}

// ReceiptRepository stores receipts keyed by wallet
type ReceiptRepository interface {
	// SaveReceipt appends a receipt to its wallet.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// ListReceiptsByWallet returns the wallet's receipts oldest first.
	ListReceiptsByWallet(ctx context.Context, walletID string) ([]domain.Receipt, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
// This is the boundary a persistent backend has to satisfy
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	TransactionReader
	ReceiptRepository
}
