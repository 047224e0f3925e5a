package accounting

import (
	"fmt"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Scale and magnitude limits for stored amounts. Quantity x unit price then
// has at most four decimal places, which the ledger columns keep exactly.
const (
	MoneyPlaces    int32 = 2
	QuantityPlaces int32 = 2
)

var (
	MaxQuantity    = decimal.NewFromInt(100_000)
	MaxUnitPrice   = decimal.NewFromInt(100_000_000)
	MaxBudget      = decimal.NewFromInt(1_000_000_000_000)
	MaxWalletTotal = decimal.NewFromInt(10_000_000_000_000)
)

// EndingCash returns beginningCash + totalIncome - totalExpenses for a wallet.
func EndingCash(w domain.Wallet) decimal.Decimal {
	return w.BeginningCash.Add(w.TotalIncome).Sub(w.TotalExpenses)
}

// ApplyBudget sets the wallet's beginning cash and recomputes its ending cash.
// Negative budgets are rejected and leave the wallet untouched.
func ApplyBudget(w *domain.Wallet, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("budget must not be negative, got %s", amount.String())
	}
	if amount.GreaterThan(MaxBudget) {
		return limitExceeded("amount", MaxBudget)
	}
	w.BeginningCash = amount
	w.EndingCash = EndingCash(*w)
	return nil
}

// ApplyTransaction adds the absolute value of signedAmount to the income or
// expense total selected by txnType, then recomputes ending cash. A total
// past MaxWalletTotal is rejected and leaves the wallet untouched.
func ApplyTransaction(w *domain.Wallet, signedAmount decimal.Decimal, txnType domain.TransactionType) error {
	var total *decimal.Decimal
	switch txnType {
	case domain.Income:
		total = &w.TotalIncome
	case domain.Expense:
		total = &w.TotalExpenses
	default:
		return fmt.Errorf("unknown transaction type '%s' for wallet %s", txnType, w.WalletID)
	}

	next := total.Add(signedAmount.Abs())
	if next.GreaterThan(MaxWalletTotal) {
		return limitExceeded("amount", MaxWalletTotal)
	}
	*total = next
	w.EndingCash = EndingCash(*w)
	return nil
}

func limitExceeded(field string, limit decimal.Decimal) error {
	return apperrors.NewValidationError(map[string]string{
		field: "would exceed the wallet limit of " + limit.String(),
	})
}

// SignedAmount returns unitPrice x quantity, negated for expenses.
func SignedAmount(unitPrice, quantity decimal.Decimal, txnType domain.TransactionType) decimal.Decimal {
	amount := unitPrice.Mul(quantity)
	if txnType == domain.Expense {
		return amount.Neg()
	}
	return amount
}
