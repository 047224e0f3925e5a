package repositories

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// ReportStateRepository stores the generated report and its lifecycle status per wallet
type ReportStateRepository interface {
	// FindReport returns the wallet's report. Returns apperrors.ErrNotFound if none was generated.
	FindReport(ctx context.Context, walletID string) (*domain.WalletReport, error)

	// SaveReport stores or replaces the wallet's report.
	SaveReport(ctx context.Context, report domain.WalletReport) error

	// ClearGeneratedExcept drops every report still in GENERATED status whose
	// wallet is not walletID. Submitted reports are kept.
	ClearGeneratedExcept(ctx context.Context, walletID string) error
}
