package domain

import "time"

// Receipt is an uploaded proof of purchase filed under a wallet.
type Receipt struct {
	ReceiptID   string    `json:"receiptID"`
	WalletID    string    `json:"walletID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
