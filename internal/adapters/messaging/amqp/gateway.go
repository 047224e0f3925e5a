package amqp

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/core/ports/gateways"
)

// Publisher is the part of Client the gateway needs.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Gateway hands report transitions to the finance backend over AMQP.
type Gateway struct {
	publisher Publisher
	now       func() time.Time
}

// NewGateway creates a gateway publishing through publisher.
func NewGateway(publisher Publisher) *Gateway {
	return &Gateway{publisher: publisher, now: time.Now}
}

var _ gateways.ReportGateway = (*Gateway)(nil)

func (g *Gateway) GenerateReport(ctx context.Context, report domain.WalletReport) error {
	return g.publish(ctx, RoutingKeyGenerated, report)
}

func (g *Gateway) SubmitReport(ctx context.Context, report domain.WalletReport) error {
	return g.publish(ctx, RoutingKeySubmitted, report)
}

func (g *Gateway) publish(ctx context.Context, routingKey string, report domain.WalletReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := NewReportEvent(routingKey, report, g.now()).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal report event: %w", err)
	}
	if err := g.publisher.Publish(ctx, routingKey, body); err != nil {
		return fmt.Errorf("%s for wallet %s: %w", routingKey, report.WalletID, err)
	}
	return nil
}
