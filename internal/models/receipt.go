package models

import "time"

// Receipt is one row of the receipts table.
type Receipt struct {
	ReceiptID   string    `db:"receipt_id"`
	WalletID    string    `db:"wallet_id"`
	Seq         int64     `db:"seq"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	FileName    string    `db:"file_name"` // Nullable
	ReceiptDate time.Time `db:"receipt_date"`
	CreatedAt   time.Time `db:"created_at"`
}
