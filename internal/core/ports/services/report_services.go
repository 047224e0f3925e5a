package services

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// ReportSvcFacade drives the generate -> preview/print -> submit workflow for
// the wallet a session has open
type ReportSvcFacade interface {
	// Status returns the selected wallet's id and report status.
	Status(ctx context.Context, sessionID string) (string, domain.ReportStatus, error)

	// Generate builds the selected wallet's report and marks it GENERATED.
	Generate(ctx context.Context, sessionID string) (*domain.WalletReport, error)

	// Preview returns the generated report.
	Preview(ctx context.Context, sessionID string) (*domain.WalletReport, error)

	// Print renders the generated report as an XLSX workbook.
	Print(ctx context.Context, sessionID string) (*domain.WalletReport, []byte, error)

	// Submit sends the generated report and marks it SUBMITTED.
	Submit(ctx context.Context, sessionID string) (*domain.WalletReport, error)
}
