package services

import (
	"log/slog"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events portssvc.EventPublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Events: events}

	// Currency and household lookups are shared by every ledger-facing service
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Household = NewHouseholdService(repos.HouseholdRepo, repos.AccountRepo)

	policy := NewTransactionPolicy(container.Household,
		WithCrossUserAccountTypes(crossUserAccountTypes(cfg.CrossUserAccountTypes)...))

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.AccountRepo,
		repos.CategoryTagRepo,
		repos.UserRepo,
		container.Currency,
		container.Household,
		WithLedgerPolicy(policy),
		WithLedgerEventPublisher(events),
	)

	openingBalance := NewOpeningBalanceService(repos.UserRepo, repos.AccountRepo, container.Ledger)
	container.Account = NewAccountService(repos.TxManager, repos.AccountRepo, container.Currency, openingBalance)
	container.Balance = NewBalanceService(repos.AccountRepo, repos.LedgerRepo, container.Currency, container.Household)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		repos.AccountRepo,
		repos.LedgerRepo,
		container.Currency,
		container.Household,
		WithMaxTimeseriesDays(cfg.ReportMaxTimeseriesDays),
	)

	return container
}

// crossUserAccountTypes parses configured type names, ignoring unknown ones.
// Falls back to ASSET when nothing valid is configured.
func crossUserAccountTypes(names []string) []domain.AccountType {
	types := make([]domain.AccountType, 0, len(names))
	for _, name := range names {
		t, ok := domain.ParseAccountType(name)
		if !ok {
			slog.Warn("Ignoring unknown cross-user account type", slog.String("type", name))
			continue
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return []domain.AccountType{domain.Asset}
	}
	return types
}
