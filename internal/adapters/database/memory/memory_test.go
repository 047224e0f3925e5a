package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWalletRepo() *WalletRepository {
	return NewWalletRepository(domain.NewAcademicYearWallets(2025, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)))
}

func income(walletID string, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + amount,
		WalletID:      walletID,
		Amount:        decimal.RequireFromString(amount),
		Type:          domain.Income,
	}
}

func TestWalletRepository_ListKeepsMonthOrder(t *testing.T) {
	repo := newTestWalletRepo()

	wallets, err := repo.ListWallets(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, domain.WalletCount)
	assert.Equal(t, "AUGUST", wallets[0].Name)
	assert.Equal(t, "MAY", wallets[9].Name)
	assert.Equal(t, "2026-05", wallets[9].WalletID)
}

func TestWalletRepository_UnknownWallet(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	_, err := repo.FindWalletByID(ctx, "2030-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.SetBudget(ctx, "2030-01", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.RecordTransaction(ctx, income("2030-01", "5"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = repo.SaveReceipt(ctx, domain.Receipt{WalletID: "2030-01", Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.ListTransactionsByWallet(ctx, "2030-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestWalletRepository_RecordTransactionUpdatesTotals(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	_, err := repo.SetBudget(ctx, "2026-02", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = repo.RecordTransaction(ctx, income("2026-02", "511.92"))
	require.NoError(t, err)
	w, err := repo.RecordTransaction(ctx, domain.Transaction{
		WalletID: "2026-02",
		Amount:   decimal.NewFromInt(-73),
		Type:     domain.Expense,
	})
	require.NoError(t, err)

	assert.Equal(t, "1438.92", w.EndingCash.String())
	assert.True(t, w.BalanceHolds())

	txns, err := repo.ListTransactionsByWallet(ctx, "2026-02")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, domain.Income, txns[0].Type)
	assert.Equal(t, domain.Expense, txns[1].Type)

	other, err := repo.ListTransactionsByWallet(ctx, "2026-03")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestWalletRepository_RejectsMismatchedSign(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	_, err := repo.RecordTransaction(ctx, domain.Transaction{
		WalletID: "2026-02",
		Amount:   decimal.NewFromInt(10),
		Type:     domain.Expense,
	})
	require.Error(t, err)

	w, err := repo.FindWalletByID(ctx, "2026-02")
	require.NoError(t, err)
	assert.True(t, w.TotalExpenses.IsZero())
	txns, _ := repo.ListTransactionsByWallet(ctx, "2026-02")
	assert.Empty(t, txns)
}

func TestWalletRepository_ReturnsCopies(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	w, err := repo.FindWalletByID(ctx, "2025-08")
	require.NoError(t, err)
	w.EndingCash = decimal.NewFromInt(99)

	again, err := repo.FindWalletByID(ctx, "2025-08")
	require.NoError(t, err)
	assert.True(t, again.EndingCash.IsZero())
}

func TestWalletRepository_ReceiptsKeyedByWallet(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	require.NoError(t, repo.SaveReceipt(ctx, domain.Receipt{WalletID: "2026-02", Name: "OR-1"}))
	require.NoError(t, repo.SaveReceipt(ctx, domain.Receipt{WalletID: "2026-02", Name: "OR-2"}))
	require.NoError(t, repo.SaveReceipt(ctx, domain.Receipt{WalletID: "2026-03", Name: "OR-3"}))

	feb, err := repo.ListReceiptsByWallet(ctx, "2026-02")
	require.NoError(t, err)
	require.Len(t, feb, 2)
	assert.Equal(t, "OR-1", feb[0].Name)

	mar, err := repo.ListReceiptsByWallet(ctx, "2026-03")
	require.NoError(t, err)
	assert.Len(t, mar, 1)
}

func TestWalletRepository_ConcurrentWritesKeepBalance(t *testing.T) {
	repo := newTestWalletRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.RecordTransaction(ctx, income("2025-09", "2.50"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	w, err := repo.FindWalletByID(ctx, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, "125", w.TotalIncome.String())
	assert.True(t, w.BalanceHolds())
}

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	_, err := repo.FindSessionByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.UpdateSelectedWallet(ctx, "missing", "2026-02")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: "s1"}))
	s, err := repo.UpdateSelectedWallet(ctx, "s1", "2026-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-02", s.SelectedWalletID)

	found, err := repo.FindSessionByID(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found.HasSelection())
}

func TestSessionRepository_ExpiresIdleSessions(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(WithSessionTTL(time.Hour), WithSessionClock(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: "active"}))
	require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: "idle"}))

	now = now.Add(50 * time.Minute)
	_, err := repo.FindSessionByID(ctx, "active")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = repo.FindSessionByID(ctx, "active")
	assert.NoError(t, err, "use refreshes the idle timer")
	_, err = repo.FindSessionByID(ctx, "idle")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.UpdateSelectedWallet(ctx, "idle", "2026-02")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRepository_SweepsExpiredOnSave(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(WithSessionTTL(time.Minute), WithSessionClock(func() time.Time { return now }))
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: fmt.Sprintf("s%d", i)}))
	}
	now = now.Add(2 * time.Minute)
	require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: "fresh"}))
	assert.Equal(t, 1, repo.Len())
}

func TestSessionRepository_CapEvictsLeastRecentlyUsed(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(WithMaxSessions(3), WithSessionClock(func() time.Time { return now }))
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: id}))
		now = now.Add(time.Second)
	}
	_, err := repo.FindSessionByID(ctx, "a")
	require.NoError(t, err)
	now = now.Add(time.Second)

	require.NoError(t, repo.SaveSession(ctx, domain.Session{SessionID: "d"}))
	assert.Equal(t, 3, repo.Len())
	_, err = repo.FindSessionByID(ctx, "b")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	for _, id := range []string{"a", "c", "d"} {
		_, err = repo.FindSessionByID(ctx, id)
		assert.NoError(t, err, id)
	}
}

func TestReportRepository_ClearGeneratedExcept(t *testing.T) {
	repo := NewReportRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveReport(ctx, domain.WalletReport{WalletID: "A", Status: domain.ReportGenerated}))
	require.NoError(t, repo.SaveReport(ctx, domain.WalletReport{WalletID: "B", Status: domain.ReportGenerated}))
	require.NoError(t, repo.SaveReport(ctx, domain.WalletReport{WalletID: "C", Status: domain.ReportSubmitted}))

	require.NoError(t, repo.ClearGeneratedExcept(ctx, "B"))

	_, err := repo.FindReport(ctx, "A")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	b, err := repo.FindReport(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportGenerated, b.Status)
	c, err := repo.FindReport(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, domain.ReportSubmitted, c.Status)
}
