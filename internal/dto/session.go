package dto

import (
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// SelectWalletRequest opens a wallet in a session.
type SelectWalletRequest struct {
	WalletID string `json:"walletID" binding:"required"`
}

// SessionResponse defines the data returned for a session. Wallet and
// ReportStatus are only set when a wallet is selected.
type SessionResponse struct {
	SessionID        string          `json:"sessionID"`
	SelectedWalletID string          `json:"selectedWalletID"`
	Wallet           *WalletResponse `json:"wallet,omitempty"`
	ReportStatus     string          `json:"reportStatus,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToSessionResponse converts a domain.Session to SessionResponse DTO.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:        s.SessionID,
		SelectedWalletID: s.SelectedWalletID,
		CreatedAt:        s.CreatedAt,
	}
}
