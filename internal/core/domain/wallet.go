package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// academicMonths is the fixed wallet order: August of the start year through May of the next.
var academicMonths = []time.Month{
	time.August, time.September, time.October, time.November, time.December,
	time.January, time.February, time.March, time.April, time.May,
}

// WalletCount is the number of month-wallets in one academic year.
const WalletCount = 10

// Wallet is one calendar month of an organization's finances.
// EndingCash is derived and must always equal BeginningCash + TotalIncome - TotalExpenses.
type Wallet struct {
	WalletID      string          `json:"walletID"`  // ISO year-month, e.g. 2026-02
	Name          string          `json:"name"`      // Upper-case month name, e.g. FEBRUARY
	YearMonth     string          `json:"yearMonth"` // ISO year-month
	BeginningCash decimal.Decimal `json:"beginningCash"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	EndingCash    decimal.Decimal `json:"endingCash"`
	AuditFields
}

// BalanceHolds reports whether the ending-cash invariant is satisfied.
func (w Wallet) BalanceHolds() bool {
	return w.EndingCash.Equal(w.BeginningCash.Add(w.TotalIncome).Sub(w.TotalExpenses))
}

// NewAcademicYearWallets builds the ten zeroed wallets for the academic year
// starting in August of startYear.
func NewAcademicYearWallets(startYear int, now time.Time) []Wallet {
	wallets := make([]Wallet, 0, WalletCount)
	for _, month := range academicMonths {
		year := startYear
		if month < time.August {
			year++
		}
		ym := fmt.Sprintf("%04d-%02d", year, int(month))
		wallets = append(wallets, Wallet{
			WalletID:      ym,
			Name:          strings.ToUpper(month.String()),
			YearMonth:     ym,
			BeginningCash: decimal.Zero,
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
			EndingCash:    decimal.Zero,
			AuditFields: AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		})
	}
	return wallets
}
