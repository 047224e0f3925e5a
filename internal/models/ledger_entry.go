package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors domain.TransactionType in the entry_type column.
type EntryType string

const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// LedgerEntry is one row of the ledger_entries table.
// Amount is signed: negative rows are expenses.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	WalletID    string          `db:"wallet_id"`
	Seq         int64           `db:"seq"` // Insertion order within the wallet
	EventLabel  string          `db:"event_label"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Amount      decimal.Decimal `db:"amount"`
	EntryDate   time.Time       `db:"entry_date"`
	EntryType   EntryType       `db:"entry_type"`
	CreatedAt   time.Time       `db:"created_at"`
}
