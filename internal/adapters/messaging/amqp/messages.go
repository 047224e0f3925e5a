package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// Routing keys for report lifecycle events.
const (
	RoutingKeyGenerated = "report.generated"
	RoutingKeySubmitted = "report.submitted"
)

// ReportEvent announces a report transition to the finance backend.
// It carries the totals only; consumers fetch the ledger themselves.
type ReportEvent struct {
	Event         string    `json:"event"`
	WalletID      string    `json:"walletID"`
	WalletName    string    `json:"walletName"`
	YearMonth     string    `json:"yearMonth"`
	BeginningCash string    `json:"beginningCash"`
	TotalIncome   string    `json:"totalIncome"`
	TotalExpenses string    `json:"totalExpenses"`
	EndingCash    string    `json:"endingCash"`
	IncomeCount   int       `json:"incomeCount"`
	ExpenseCount  int       `json:"expenseCount"`
	ReceiptCount  int       `json:"receiptCount"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewReportEvent builds the event for report under routingKey.
func NewReportEvent(routingKey string, report domain.WalletReport, now time.Time) *ReportEvent {
	return &ReportEvent{
		Event:         routingKey,
		WalletID:      report.WalletID,
		WalletName:    report.WalletName,
		YearMonth:     report.YearMonth,
		BeginningCash: report.BeginningCash.String(),
		TotalIncome:   report.TotalIncome.String(),
		TotalExpenses: report.TotalExpenses.String(),
		EndingCash:    report.EndingCash.String(),
		IncomeCount:   len(report.Income),
		ExpenseCount:  len(report.Expenses),
		ReceiptCount:  len(report.Receipts),
		Timestamp:     now,
	}
}

// ToJSON converts the message to JSON bytes
func (m *ReportEvent) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportEventFromJSON decodes an event published by Gateway.
func ReportEventFromJSON(data []byte) (*ReportEvent, error) {
	var msg ReportEvent
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
