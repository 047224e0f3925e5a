package domain

import "time"

// Session is one portal user's view state: which wallet is currently open.
type Session struct {
	SessionID        string    `json:"sessionID"`
	SelectedWalletID string    `json:"selectedWalletID"` // Empty when no wallet is open
	CreatedAt        time.Time `json:"createdAt"`
}

// HasSelection reports whether a wallet is open.
func (s Session) HasSelection() bool {
	return s.SelectedWalletID != ""
}
