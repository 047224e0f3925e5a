package memory

import (
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
)

// NewRepositoryProvider wires in-memory repositories around the given wallets.
func NewRepositoryProvider(wallets []domain.Wallet, sessionOpts ...SessionRepositoryOption) portsrepo.RepositoryProvider {
	return NewRepositoryProviderWithWalletRepo(NewWalletRepository(wallets), sessionOpts...)
}

// NewRepositoryProviderWithWalletRepo keeps sessions and report state in
// memory while the ledger lives in walletRepo.
func NewRepositoryProviderWithWalletRepo(walletRepo portsrepo.WalletRepositoryFacade, sessionOpts ...SessionRepositoryOption) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo:  walletRepo,
		SessionRepo: NewSessionRepository(sessionOpts...),
		ReportRepo:  NewReportRepository(),
	}
}
