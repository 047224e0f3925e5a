package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a ledger entry as income or expense.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction is a single income or expense entry owned by one wallet.
// Amount is signed: positive for income, negative for expense.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	WalletID      string          `json:"walletID"`
	EventLabel    string          `json:"eventLabel"`  // Name of the owning wallet
	Description   string          `json:"description"` // "{quantity} x {category} - {description}"
	Category      string          `json:"category"`    // Income type or expense particulars
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate checks that the amount sign agrees with the type tag.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Amount.IsZero() {
		return errors.New("transaction amount must not be zero")
	}
	if t.Amount.IsNegative() != (t.Type == Expense) {
		return fmt.Errorf("amount %s does not match transaction type %s", t.Amount.String(), t.Type)
	}
	return nil
}

// TransactionFilter selects which partitions of a wallet's ledger are shown.
type TransactionFilter string

const (
	FilterAll     TransactionFilter = "all"
	FilterIncome  TransactionFilter = "income"
	FilterExpense TransactionFilter = "expense"
)

// ParseTransactionFilter maps a query value to a filter. Empty means all.
func ParseTransactionFilter(s string) (TransactionFilter, error) {
	switch TransactionFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome:
		return FilterIncome, nil
	case FilterExpense:
		return FilterExpense, nil
	}
	return "", fmt.Errorf("unknown transaction filter %q", s)
}
