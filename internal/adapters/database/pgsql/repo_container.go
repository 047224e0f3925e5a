package pgsql

import (
	"github.com/SscSPs/pres_finance_portal/internal/adapters/database/memory"
	portsrepo "github.com/SscSPs/pres_finance_portal/internal/core/ports/repositories"
)

// NewRepositoryProvider keeps the ledger in Postgres. Sessions and report
// state are view state and stay in memory.
func NewRepositoryProvider(walletRepo *PgxWalletRepository, sessionOpts ...memory.SessionRepositoryOption) portsrepo.RepositoryProvider {
	return memory.NewRepositoryProviderWithWalletRepo(walletRepo, sessionOpts...)
}
