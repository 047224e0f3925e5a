package simulated

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/core/ports/gateways"
	"github.com/SscSPs/pres_finance_portal/internal/middleware"
)

// DefaultDelay is the round trip the portal has always shown for report actions.
const DefaultDelay = 1500 * time.Millisecond

// Gateway stands in for the report backend: it waits for a fixed delay and succeeds.
type Gateway struct {
	delay time.Duration
}

// NewGateway creates a gateway that takes delay per call. A negative delay means DefaultDelay.
func NewGateway(delay time.Duration) *Gateway {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Gateway{delay: delay}
}

var _ gateways.ReportGateway = (*Gateway)(nil)

func (g *Gateway) GenerateReport(ctx context.Context, report domain.WalletReport) error {
	return g.roundTrip(ctx, "generate", report.WalletID)
}

func (g *Gateway) SubmitReport(ctx context.Context, report domain.WalletReport) error {
	return g.roundTrip(ctx, "submit", report.WalletID)
}

func (g *Gateway) roundTrip(ctx context.Context, action, walletID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Debug("Simulated report call started",
		slog.String("action", action),
		slog.String("wallet_id", walletID),
		slog.Duration("delay", g.delay))

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		logger.Debug("Simulated report call cancelled",
			slog.String("action", action),
			slog.String("wallet_id", walletID))
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
