package services

import (
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	"github.com/SscSPs/pres_finance_portal/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with all services initialized
func NewServiceContainer(repos portsrepo.RepositoryProvider, gateway gateways.ReportGateway, mode domain.ReportStateMode) *portssvc.ServiceContainer {
	walletSvc := NewWalletService(repos.WalletRepo)
	sessionSvc := NewSessionService(repos.SessionRepo, repos.WalletRepo)
	reportSvc := NewReportService(repos.SessionRepo, repos.WalletRepo, repos.ReportRepo, gateway,
		WithReportStateMode(mode))

	return &portssvc.ServiceContainer{
		Wallet:  walletSvc,
		Session: sessionSvc,
		Report:  reportSvc,
	}
}
