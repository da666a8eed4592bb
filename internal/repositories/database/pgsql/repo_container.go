package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:       accountRepo,
		AccountRepo:     accountRepo,
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		CategoryTagRepo: newPgxCategoryTagRepository(dbPool),
		HouseholdRepo:   newPgxHouseholdRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
