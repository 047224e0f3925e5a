package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// WalletRepositoryTestSuite runs against a migrated database named by
// PGSQL_TEST_URL and is skipped without one.
type WalletRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxWalletRepository
	ctx  context.Context
}

func (suite *WalletRepositoryTestSuite) SetupSuite() {
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		suite.T().Skip("PGSQL_TEST_URL not set")
	}
	suite.ctx = context.Background()
	pool, err := database.NewPgxPool(suite.ctx, url, true)
	suite.Require().NoError(err)
	suite.pool = pool
	suite.repo = NewWalletRepository(pool, domain.NewAcademicYearWallets(2025, time.Now()))
}

func (suite *WalletRepositoryTestSuite) SetupTest() {
	_, err := suite.pool.Exec(suite.ctx, `TRUNCATE receipts, ledger_entries, wallets;`)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.EnsureWallets(suite.ctx))
}

func (suite *WalletRepositoryTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *WalletRepositoryTestSuite) TestSeedIsIdempotentAndOrdered() {
	suite.Require().NoError(suite.repo.EnsureWallets(suite.ctx))

	wallets, err := suite.repo.ListWallets(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(wallets, domain.WalletCount)
	suite.Equal("AUGUST", wallets[0].Name)
	suite.Equal("MAY", wallets[9].Name)
}

func (suite *WalletRepositoryTestSuite) TestNextAcademicYearIsSeparate() {
	next := NewWalletRepository(suite.pool, domain.NewAcademicYearWallets(2026, time.Now()))
	suite.Require().NoError(next.EnsureWallets(suite.ctx))

	wallets, err := next.ListWallets(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(wallets, domain.WalletCount)
	expected := domain.NewAcademicYearWallets(2026, time.Now())
	for i := range wallets {
		suite.Equal(expected[i].WalletID, wallets[i].WalletID)
	}

	_, err = next.FindWalletByID(suite.ctx, "2026-02")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = next.SetBudget(suite.ctx, "2026-02", decimal.NewFromInt(10))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	wallets, err = suite.repo.ListWallets(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(wallets, domain.WalletCount)
	suite.Equal("2025-08", wallets[0].WalletID)
	suite.Equal("2026-05", wallets[9].WalletID)
}

func (suite *WalletRepositoryTestSuite) TestFractionalAmountsStayExact() {
	day := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	w, err := suite.repo.RecordTransaction(suite.ctx, domain.Transaction{
		TransactionID: uuid.NewString(), WalletID: "2026-02", EventLabel: "FEBRUARY",
		Description: "1.25 x Stamps - office", Category: "Stamps",
		Quantity: decimal.RequireFromString("1.25"), UnitPrice: decimal.RequireFromString("0.01"),
		Amount: decimal.RequireFromString("-0.0125"), Date: day, Type: domain.Expense, CreatedAt: day,
	})
	suite.Require().NoError(err)
	suite.Equal("0.0125", w.TotalExpenses.String())

	stored, err := suite.repo.FindWalletByID(suite.ctx, "2026-02")
	suite.Require().NoError(err)
	suite.True(stored.EndingCash.Equal(decimal.RequireFromString("-0.0125")))
	suite.True(stored.BalanceHolds())
}

func (suite *WalletRepositoryTestSuite) TestLedgerKeepsBalance() {
	_, err := suite.repo.SetBudget(suite.ctx, "2026-02", decimal.NewFromInt(1000))
	suite.Require().NoError(err)

	day := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	_, err = suite.repo.RecordTransaction(suite.ctx, domain.Transaction{
		TransactionID: uuid.NewString(), WalletID: "2026-02", EventLabel: "FEBRUARY",
		Description: "24 x Fee - intake", Category: "Fee",
		Quantity: decimal.NewFromInt(24), UnitPrice: decimal.RequireFromString("21.33"),
		Amount: decimal.RequireFromString("511.92"), Date: day, Type: domain.Income, CreatedAt: day,
	})
	suite.Require().NoError(err)
	w, err := suite.repo.RecordTransaction(suite.ctx, domain.Transaction{
		TransactionID: uuid.NewString(), WalletID: "2026-02", EventLabel: "FEBRUARY",
		Description: "1 x Snacks - assembly", Category: "Snacks",
		Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(73),
		Amount: decimal.NewFromInt(-73), Date: day, Type: domain.Expense, CreatedAt: day,
	})
	suite.Require().NoError(err)
	suite.True(w.EndingCash.Equal(decimal.RequireFromString("1438.92")))

	txns, err := suite.repo.ListTransactionsByWallet(suite.ctx, "2026-02")
	suite.Require().NoError(err)
	suite.Require().Len(txns, 2)
	suite.Equal(domain.Income, txns[0].Type)
}

func (suite *WalletRepositoryTestSuite) TestUnknownWallet() {
	_, err := suite.repo.FindWalletByID(suite.ctx, "2030-01")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.repo.SaveReceipt(suite.ctx, domain.Receipt{ReceiptID: uuid.NewString(), WalletID: "2030-01", Name: "x", Date: time.Now()})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestWalletRepository(t *testing.T) {
	suite.Run(t, new(WalletRepositoryTestSuite))
}
