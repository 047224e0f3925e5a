package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	"github.com/SscSPs/pres_finance_portal/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// WalletRepository keeps the month-wallets, their ledgers and receipts in memory.
// The wallet set is fixed at construction; nothing is persisted.
type WalletRepository struct {
	mu       sync.RWMutex
	order    []string
	wallets  map[string]*domain.Wallet
	ledgers  map[string][]domain.Transaction
	receipts map[string][]domain.Receipt
	now      func() time.Time
}

// NewWalletRepository creates a repository holding wallets in the given order.
func NewWalletRepository(wallets []domain.Wallet) *WalletRepository {
	r := &WalletRepository{
		order:    make([]string, 0, len(wallets)),
		wallets:  make(map[string]*domain.Wallet, len(wallets)),
		ledgers:  make(map[string][]domain.Transaction, len(wallets)),
		receipts: make(map[string][]domain.Receipt, len(wallets)),
		now:      time.Now,
	}
	for i := range wallets {
		w := wallets[i]
		r.order = append(r.order, w.WalletID)
		r.wallets[w.WalletID] = &w
	}
	return r
}

var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)

func (r *WalletRepository) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallets := make([]domain.Wallet, 0, len(r.order))
	for _, id := range r.order {
		wallets = append(wallets, *r.wallets[id])
	}
	return wallets, nil
}

func (r *WalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wallets[walletID]
	if !ok {
		return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	copied := *w
	return &copied, nil
}

func (r *WalletRepository) SetBudget(ctx context.Context, walletID string, amount decimal.Decimal) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[walletID]
	if !ok {
		return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	updated := *w
	if err := accounting.ApplyBudget(&updated, amount); err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = r.now()
	*w = updated
	return &updated, nil
}

func (r *WalletRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Wallet, error) {
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wallets[txn.WalletID]
	if !ok {
		return nil, fmt.Errorf("wallet %s: %w", txn.WalletID, apperrors.ErrNotFound)
	}
	updated := *w
	if err := accounting.ApplyTransaction(&updated, txn.Amount, txn.Type); err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = r.now()
	*w = updated
	r.ledgers[txn.WalletID] = append(r.ledgers[txn.WalletID], txn)
	return &updated, nil
}

func (r *WalletRepository) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.wallets[walletID]; !ok {
		return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	return append([]domain.Transaction{}, r.ledgers[walletID]...), nil
}

func (r *WalletRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.wallets[receipt.WalletID]; !ok {
		return fmt.Errorf("wallet %s: %w", receipt.WalletID, apperrors.ErrNotFound)
	}
	r.receipts[receipt.WalletID] = append(r.receipts[receipt.WalletID], receipt)
	return nil
}

func (r *WalletRepository) ListReceiptsByWallet(ctx context.Context, walletID string) ([]domain.Receipt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.wallets[walletID]; !ok {
		return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	return append([]domain.Receipt{}, r.receipts[walletID]...), nil
}
