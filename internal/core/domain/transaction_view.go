package domain

// TransactionView is a filtered, grouped projection of a wallet's ledger.
// Income entries come first, then expenses, each in entry order.
type TransactionView struct {
	WalletID string            `json:"walletID"`
	Filter   TransactionFilter `json:"filter"`
	Income   []Transaction     `json:"income"`
	Expenses []Transaction     `json:"expenses"`
}

// Items returns the income group followed by the expense group.
func (v TransactionView) Items() []Transaction {
	items := make([]Transaction, 0, len(v.Income)+len(v.Expenses))
	items = append(items, v.Income...)
	return append(items, v.Expenses...)
}

// Empty reports whether the projection matched nothing.
func (v TransactionView) Empty() bool {
	return len(v.Income) == 0 && len(v.Expenses) == 0
}
