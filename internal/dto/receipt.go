package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// AddReceiptRequest is the receipt-upload form.
type AddReceiptRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	FileName    string `json:"fileName"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Normalize trims surrounding whitespace from every field.
func (r *AddReceiptRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.FileName = strings.TrimSpace(r.FileName)
	r.Date = strings.TrimSpace(r.Date)
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID   string    `json:"receiptID"`
	WalletID    string    `json:"walletID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FileName    string    `json:"fileName,omitempty"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListReceiptsResponse wraps the list of receipts.
type ListReceiptsResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO.
func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:   r.ReceiptID,
		WalletID:    r.WalletID,
		Name:        r.Name,
		Description: r.Description,
		FileName:    r.FileName,
		Date:        r.Date.Format(domain.DateLayout),
		CreatedAt:   r.CreatedAt,
	}
}

// ToListReceiptsResponse converts a slice of domain.Receipt to ListReceiptsResponse.
func ToListReceiptsResponse(receipts []domain.Receipt) ListReceiptsResponse {
	res := ListReceiptsResponse{Receipts: make([]ReceiptResponse, len(receipts))}
	for i := range receipts {
		res.Receipts[i] = ToReceiptResponse(&receipts[i])
	}
	return res
}
