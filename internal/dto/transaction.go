package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest is the income/expense entry form. The Type toggle
// decides whether IncomeType or Particulars is required.
type RecordTransactionRequest struct {
	Type        domain.TransactionType `json:"type" validate:"required,oneof=income expense"`
	Date        string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity    string                 `json:"quantity" validate:"required,numeric"`
	IncomeType  string                 `json:"incomeType" validate:"required_if=Type income"`
	Particulars string                 `json:"particulars" validate:"required_if=Type expense"`
	Description string                 `json:"description" validate:"required"`
	UnitPrice   string                 `json:"unitPrice" validate:"required,numeric"`
}

// Normalize trims surrounding whitespace from every field.
func (r *RecordTransactionRequest) Normalize() {
	r.Type = domain.TransactionType(strings.TrimSpace(string(r.Type)))
	r.Date = strings.TrimSpace(r.Date)
	r.Quantity = strings.TrimSpace(r.Quantity)
	r.IncomeType = strings.TrimSpace(r.IncomeType)
	r.Particulars = strings.TrimSpace(r.Particulars)
	r.Description = strings.TrimSpace(r.Description)
	r.UnitPrice = strings.TrimSpace(r.UnitPrice)
}

// Category returns the income type or particulars depending on the entry type.
func (r *RecordTransactionRequest) Category() string {
	if r.Type == domain.Expense {
		return r.Particulars
	}
	return r.IncomeType
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	WalletID      string          `json:"walletID"`
	Event         string          `json:"event"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionViewResponse is the grouped ledger listing.
type TransactionViewResponse struct {
	WalletID     string                `json:"walletID"`
	Filter       string                `json:"filter"`
	Income       []TransactionResponse `json:"income"`
	Expenses     []TransactionResponse `json:"expenses"`
	Transactions []TransactionResponse `json:"transactions"`
	Empty        bool                  `json:"empty"`
}

// RecordTransactionResponse is returned after a successful entry.
type RecordTransactionResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
	Wallet      WalletResponse      `json:"wallet"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		WalletID:      txn.WalletID,
		Event:         txn.EventLabel,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Date:          txn.Date.Format(domain.DateLayout),
		Type:          string(txn.Type),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToTransactionViewResponse converts a projection to its response DTO.
func ToTransactionViewResponse(view domain.TransactionView) TransactionViewResponse {
	return TransactionViewResponse{
		WalletID:     view.WalletID,
		Filter:       string(view.Filter),
		Income:       ToTransactionResponses(view.Income),
		Expenses:     ToTransactionResponses(view.Expenses),
		Transactions: ToTransactionResponses(view.Items()),
		Empty:        view.Empty(),
	}
}
