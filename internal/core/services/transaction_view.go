package services

import "github.com/SscSPs/pres_finance_portal/internal/core/domain"

// ProjectTransactions partitions txns into income and expense groups according
// to filter. Insertion order is kept inside each group and txns is not modified.
func ProjectTransactions(walletID string, txns []domain.Transaction, filter domain.TransactionFilter) domain.TransactionView {
	view := domain.TransactionView{
		WalletID: walletID,
		Filter:   filter,
		Income:   []domain.Transaction{},
		Expenses: []domain.Transaction{},
	}

	showIncome := filter == domain.FilterAll || filter == domain.FilterIncome
	showExpense := filter == domain.FilterAll || filter == domain.FilterExpense

	for _, txn := range txns {
		switch {
		case txn.Type == domain.Income && showIncome:
			view.Income = append(view.Income, txn)
		case txn.Type == domain.Expense && showExpense:
			view.Expenses = append(view.Expenses, txn)
		}
	}
	return view
}
