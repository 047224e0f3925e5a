package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	"github.com/SscSPs/pres_finance_portal/internal/models"
	"github.com/SscSPs/pres_finance_portal/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, name, year_month, position, beginning_cash, total_income, total_expenses, ending_cash, created_at, last_updated_at`

// PgxWalletRepository stores the month-wallets, ledger entries and receipts in
// Postgres. It only sees the wallets of the academic year it was built for;
// rows seeded for other years stay in the table but are treated as unknown.
type PgxWalletRepository struct {
	BaseRepository
	wallets   []domain.Wallet
	walletIDs []string
	inYear    map[string]struct{}
}

// NewWalletRepository creates a new repository scoped to the given wallets.
func NewWalletRepository(pool *pgxpool.Pool, wallets []domain.Wallet) *PgxWalletRepository {
	r := &PgxWalletRepository{
		BaseRepository: BaseRepository{Pool: pool},
		wallets:        wallets,
		walletIDs:      make([]string, len(wallets)),
		inYear:         make(map[string]struct{}, len(wallets)),
	}
	for i, w := range wallets {
		r.walletIDs[i] = w.WalletID
		r.inYear[w.WalletID] = struct{}{}
	}
	return r
}

// Ensure PgxWalletRepository implements portsrepo.WalletRepositoryFacade
var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func toModelWallet(d domain.Wallet, position int) models.Wallet {
	return models.Wallet{
		WalletID:      d.WalletID,
		Name:          d.Name,
		YearMonth:     d.YearMonth,
		Position:      position,
		BeginningCash: d.BeginningCash,
		TotalIncome:   d.TotalIncome,
		TotalExpenses: d.TotalExpenses,
		EndingCash:    d.EndingCash,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:      m.WalletID,
		Name:          m.Name,
		YearMonth:     m.YearMonth,
		BeginningCash: m.BeginningCash,
		TotalIncome:   m.TotalIncome,
		TotalExpenses: m.TotalExpenses,
		EndingCash:    m.EndingCash,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toModelEntry(d domain.Transaction) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:     d.TransactionID,
		WalletID:    d.WalletID,
		EventLabel:  d.EventLabel,
		Description: d.Description,
		Category:    d.Category,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		Amount:      d.Amount,
		EntryDate:   d.Date,
		EntryType:   models.EntryType(d.Type),
		CreatedAt:   d.CreatedAt,
	}
}

func toDomainTransaction(m models.LedgerEntry) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.EntryID,
		WalletID:      m.WalletID,
		EventLabel:    m.EventLabel,
		Description:   m.Description,
		Category:      m.Category,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Amount:        m.Amount,
		Date:          m.EntryDate,
		Type:          domain.TransactionType(m.EntryType),
		CreatedAt:     m.CreatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.Name,
		&m.YearMonth,
		&m.Position,
		&m.BeginningCash,
		&m.TotalIncome,
		&m.TotalExpenses,
		&m.EndingCash,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w := toDomainWallet(m)
	return &w, nil
}

// checkScope rejects wallet ids outside the repository's academic year.
func (r *PgxWalletRepository) checkScope(walletID string) error {
	if _, ok := r.inYear[walletID]; !ok {
		return fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	return nil
}

// EnsureWallets inserts the repository's wallets in order, leaving existing rows untouched.
func (r *PgxWalletRepository) EnsureWallets(ctx context.Context) error {
	wallets := r.wallets
	batch := &pgx.Batch{}
	for i, w := range wallets {
		m := toModelWallet(w, i)
		batch.Queue(`
			INSERT INTO wallets (`+walletColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (wallet_id) DO NOTHING;`,
			m.WalletID, m.Name, m.YearMonth, m.Position,
			m.BeginningCash, m.TotalIncome, m.TotalExpenses, m.EndingCash,
			m.CreatedAt, m.LastUpdatedAt,
		)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for i := range wallets {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to seed wallet %s: %w", wallets[i].WalletID, err)
		}
	}
	return nil
}

func (r *PgxWalletRepository) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+walletColumns+` FROM wallets WHERE wallet_id = ANY($1) ORDER BY year_month;`, r.walletIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %w", err)
	}
	return wallets, nil
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	if err := r.checkScope(walletID); err != nil {
		return nil, err
	}
	w, err := scanWallet(r.Pool.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE wallet_id = $1;`, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", walletID, err)
	}
	return w, nil
}

// lockWallet reads the wallet row FOR UPDATE inside tx.
func lockWallet(ctx context.Context, tx pgx.Tx, walletID string) (*domain.Wallet, error) {
	w, err := scanWallet(tx.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE wallet_id = $1 FOR UPDATE;`, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock wallet %s: %w", walletID, err)
	}
	return w, nil
}

func updateTotals(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	_, err := tx.Exec(ctx, `
		UPDATE wallets
		SET beginning_cash = $2, total_income = $3, total_expenses = $4, ending_cash = $5, last_updated_at = $6
		WHERE wallet_id = $1;`,
		w.WalletID, w.BeginningCash, w.TotalIncome, w.TotalExpenses, w.EndingCash, w.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet %s totals: %w", w.WalletID, err)
	}
	return nil
}

func (r *PgxWalletRepository) SetBudget(ctx context.Context, walletID string, amount decimal.Decimal) (*domain.Wallet, error) {
	if err := r.checkScope(walletID); err != nil {
		return nil, err
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	w, err := lockWallet(ctx, tx, walletID)
	if err != nil {
		return nil, err
	}
	if err := accounting.ApplyBudget(w, amount); err != nil {
		return nil, err
	}
	w.LastUpdatedAt = time.Now()
	if err := updateTotals(ctx, tx, w); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *PgxWalletRepository) RecordTransaction(ctx context.Context, txn domain.Transaction) (*domain.Wallet, error) {
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := r.checkScope(txn.WalletID); err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	w, err := lockWallet(ctx, tx, txn.WalletID)
	if err != nil {
		return nil, err
	}

	m := toModelEntry(txn)
	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_entries (entry_id, wallet_id, event_label, description, category, quantity, unit_price, amount, entry_date, entry_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
		m.EntryID, m.WalletID, m.EventLabel, m.Description, m.Category,
		m.Quantity, m.UnitPrice, m.Amount, m.EntryDate, m.EntryType, m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, err)
	}

	if err := accounting.ApplyTransaction(w, txn.Amount, txn.Type); err != nil {
		return nil, err
	}
	w.LastUpdatedAt = time.Now()
	if err := updateTotals(ctx, tx, w); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *PgxWalletRepository) ListTransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	if _, err := r.FindWalletByID(ctx, walletID); err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT entry_id, wallet_id, seq, event_label, description, category, quantity, unit_price, amount, entry_date, entry_type, created_at
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY seq;`, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID, &m.WalletID, &m.Seq, &m.EventLabel, &m.Description, &m.Category,
			&m.Quantity, &m.UnitPrice, &m.Amount, &m.EntryDate, &m.EntryType, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return txns, nil
}

func (r *PgxWalletRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	if err := r.checkScope(receipt.WalletID); err != nil {
		return err
	}
	var fileName sql.NullString
	if receipt.FileName != "" {
		fileName = sql.NullString{String: receipt.FileName, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO receipts (receipt_id, wallet_id, name, description, file_name, receipt_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		receipt.ReceiptID, receipt.WalletID, receipt.Name, receipt.Description, fileName, receipt.Date, receipt.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // Foreign key violation
			return fmt.Errorf("wallet %s: %w", receipt.WalletID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to save receipt %s: %w", receipt.ReceiptID, err)
	}
	return nil
}

func (r *PgxWalletRepository) ListReceiptsByWallet(ctx context.Context, walletID string) ([]domain.Receipt, error) {
	if _, err := r.FindWalletByID(ctx, walletID); err != nil {
		return nil, err
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT receipt_id, wallet_id, seq, name, description, file_name, receipt_date, created_at
		FROM receipts
		WHERE wallet_id = $1
		ORDER BY seq;`, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts for wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	for rows.Next() {
		var m models.Receipt
		var fileName sql.NullString
		if err := rows.Scan(&m.ReceiptID, &m.WalletID, &m.Seq, &m.Name, &m.Description, &fileName, &m.ReceiptDate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		m.FileName = fileName.String
		receipts = append(receipts, domain.Receipt{
			ReceiptID:   m.ReceiptID,
			WalletID:    m.WalletID,
			Name:        m.Name,
			Description: m.Description,
			FileName:    m.FileName,
			Date:        m.ReceiptDate,
			CreatedAt:   m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating receipt rows: %w", err)
	}
	return receipts, nil
}
