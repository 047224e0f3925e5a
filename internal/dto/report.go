package dto

import (
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportStatusResponse tells the UI which report actions are available.
type ReportStatusResponse struct {
	WalletID   string `json:"walletID"`
	Status     string `json:"status"`
	CanPreview bool   `json:"canPreview"`
	CanPrint   bool   `json:"canPrint"`
	CanSubmit  bool   `json:"canSubmit"`
	// ShowActions is false once the report is submitted.
	ShowActions bool `json:"showActions"`
}

// ReportSummary holds the aggregate stat fields of a report.
type ReportSummary struct {
	BeginningCash decimal.Decimal `json:"beginningCash"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	EndingCash    decimal.Decimal `json:"endingCash"`
}

// ReportResponse defines the data returned for a generated report.
type ReportResponse struct {
	WalletID    string                `json:"walletID"`
	WalletName  string                `json:"walletName"`
	YearMonth   string                `json:"yearMonth"`
	Status      string                `json:"status"`
	Summary     ReportSummary         `json:"summary"`
	Income      []TransactionResponse `json:"income"`
	Expenses    []TransactionResponse `json:"expenses"`
	Receipts    []ReceiptResponse     `json:"receipts"`
	GeneratedAt time.Time             `json:"generatedAt"`
	SubmittedAt *time.Time            `json:"submittedAt,omitempty"`
}

// ReportActionResponse is returned by generate and submit.
type ReportActionResponse struct {
	Message string               `json:"message"`
	Status  ReportStatusResponse `json:"status"`
}

// ToReportStatusResponse converts a wallet's report status to its response DTO.
func ToReportStatusResponse(walletID string, status domain.ReportStatus) ReportStatusResponse {
	return ReportStatusResponse{
		WalletID:    walletID,
		Status:      string(status),
		CanPreview:  status.CanView(),
		CanPrint:    status.CanView(),
		CanSubmit:   status.CanSubmit(),
		ShowActions: status != domain.ReportSubmitted,
	}
}

// ToReportResponse converts a domain.WalletReport to ReportResponse DTO.
func ToReportResponse(r *domain.WalletReport) ReportResponse {
	receipts := make([]ReceiptResponse, len(r.Receipts))
	for i := range r.Receipts {
		receipts[i] = ToReceiptResponse(&r.Receipts[i])
	}
	return ReportResponse{
		WalletID:   r.WalletID,
		WalletName: r.WalletName,
		YearMonth:  r.YearMonth,
		Status:     string(r.Status),
		Summary: ReportSummary{
			BeginningCash: r.BeginningCash,
			TotalIncome:   r.TotalIncome,
			TotalExpenses: r.TotalExpenses,
			EndingCash:    r.EndingCash,
		},
		Income:      ToTransactionResponses(r.Income),
		Expenses:    ToTransactionResponses(r.Expenses),
		Receipts:    receipts,
		GeneratedAt: r.GeneratedAt,
		SubmittedAt: r.SubmittedAt,
	}
}
