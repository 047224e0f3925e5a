package gateways

import (
	"context"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
)

// ReportGateway is the backend round trip behind report generation and submission.
// Implementations must honour ctx cancellation; a non-nil error means the
// lifecycle transition must not happen.
type ReportGateway interface {
	GenerateReport(ctx context.Context, report domain.WalletReport) error
	SubmitReport(ctx context.Context, report domain.WalletReport) error
}
