package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest carries the budget form. Amount stays a string so blank
// input can be told apart from zero.
type SetBudgetRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

// Normalize trims surrounding whitespace from every field.
func (r *SetBudgetRequest) Normalize() {
	r.Amount = strings.TrimSpace(r.Amount)
}

// WalletResponse defines the data returned for a wallet.
type WalletResponse struct {
	WalletID      string          `json:"walletID"`
	Name          string          `json:"name"`
	YearMonth     string          `json:"yearMonth"`
	BeginningCash decimal.Decimal `json:"beginningCash"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	EndingCash    decimal.Decimal `json:"endingCash"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListWalletsResponse wraps the list of wallets.
type ListWalletsResponse struct {
	Wallets []WalletResponse `json:"wallets"`
}

// WalletActionResponse is returned by mutations: a notification message plus
// the wallet's refreshed stat fields.
type WalletActionResponse struct {
	Message string         `json:"message"`
	Wallet  WalletResponse `json:"wallet"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:      w.WalletID,
		Name:          w.Name,
		YearMonth:     w.YearMonth,
		BeginningCash: w.BeginningCash,
		TotalIncome:   w.TotalIncome,
		TotalExpenses: w.TotalExpenses,
		EndingCash:    w.EndingCash,
		LastUpdatedAt: w.LastUpdatedAt,
	}
}

// ToListWalletsResponse converts a slice of domain.Wallet to ListWalletsResponse
func ToListWalletsResponse(wallets []domain.Wallet) ListWalletsResponse {
	res := ListWalletsResponse{Wallets: make([]WalletResponse, len(wallets))}
	for i := range wallets {
		res.Wallets[i] = ToWalletResponse(&wallets[i])
	}
	return res
}
