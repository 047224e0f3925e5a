package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
)

// ReportRepository keeps report lifecycle state in memory. It resets on restart.
type ReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.WalletReport
}

// NewReportRepository creates an empty report store.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{reports: make(map[string]domain.WalletReport)}
}

var _ portsrepo.ReportStateRepository = (*ReportRepository)(nil)

func (r *ReportRepository) FindReport(ctx context.Context, walletID string) (*domain.WalletReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[walletID]
	if !ok {
		return nil, fmt.Errorf("report for wallet %s: %w", walletID, apperrors.ErrNotFound)
	}
	return &report, nil
}

func (r *ReportRepository) SaveReport(ctx context.Context, report domain.WalletReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[report.WalletID] = report
	return nil
}

func (r *ReportRepository) ClearGeneratedExcept(ctx context.Context, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, report := range r.reports {
		if id != walletID && report.Status == domain.ReportGenerated {
			delete(r.reports, id)
		}
	}
	return nil
}
