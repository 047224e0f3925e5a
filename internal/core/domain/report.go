package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus is the lifecycle position of a wallet's monthly report.
type ReportStatus string

const (
	ReportNotGenerated ReportStatus = "NOT_GENERATED"
	ReportGenerated    ReportStatus = "GENERATED"
	ReportSubmitted    ReportStatus = "SUBMITTED"
)

// CanView reports whether preview and print are allowed.
func (s ReportStatus) CanView() bool {
	return s == ReportGenerated || s == ReportSubmitted
}

// CanSubmit reports whether submit is allowed.
func (s ReportStatus) CanSubmit() bool {
	return s == ReportGenerated
}

// ReportStateMode controls how many wallets may hold a generated report at once.
type ReportStateMode string

const (
	// ReportStateSingle keeps one generated wallet at a time.
	ReportStateSingle ReportStateMode = "single"
	// ReportStatePerWallet tracks each wallet's report independently.
	ReportStatePerWallet ReportStateMode = "per_wallet"
)

// WalletReport is the monthly financial report generated for a wallet.
type WalletReport struct {
	WalletID      string          `json:"walletID"`
	WalletName    string          `json:"walletName"`
	YearMonth     string          `json:"yearMonth"`
	BeginningCash decimal.Decimal `json:"beginningCash"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	EndingCash    decimal.Decimal `json:"endingCash"`
	Income        []Transaction   `json:"income"`
	Expenses      []Transaction   `json:"expenses"`
	Receipts      []Receipt       `json:"receipts"`
	Status        ReportStatus    `json:"status"`
	GeneratedAt   time.Time       `json:"generatedAt"`
	SubmittedAt   *time.Time      `json:"submittedAt,omitempty"`
}
