package models

import "github.com/shopspring/decimal"

// Wallet is one row of the wallets table.
// ending_cash is stored so reports can read it without recomputing.
type Wallet struct {
	WalletID      string          `db:"wallet_id"`
	Name          string          `db:"name"`
	YearMonth     string          `db:"year_month"`
	Position      int             `db:"position"` // Month order within the academic year
	BeginningCash decimal.Decimal `db:"beginning_cash"`
	TotalIncome   decimal.Decimal `db:"total_income"`
	TotalExpenses decimal.Decimal `db:"total_expenses"`
	EndingCash    decimal.Decimal `db:"ending_cash"`
	AuditFields
}
