package repositories

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing ids are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByOwner retrieves every account owned by a user, ordered by name.
	FindAccountsByOwner(ctx context.Context, ownerUserID string) ([]domain.Account, error)
}

// AccountTransactionSupport defines account operations that run inside a caller-owned transaction
type AccountTransactionSupport interface {
	// SaveAccountTx persists a new account within tx.
	SaveAccountTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// FindAccountsByIDsTx is FindAccountsByIDs within tx, so accounts inserted earlier in tx are visible.
	FindAccountsByIDsTx(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// FindOpeningEquityAccountTx finds the owner's Opening Equity account for a currency.
	// Returns apperrors.ErrNotFound when it does not exist yet.
	FindOpeningEquityAccountTx(ctx context.Context, tx pgx.Tx, ownerUserID, currencyCode string) (*domain.Account, error)
}

// AccountFinder resolves accounts standalone or inside a caller-owned transaction
type AccountFinder interface {
	AccountReader
	FindAccountsByIDsTx(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
