package repositories

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// HouseholdReader answers membership and sharing questions about households.
type HouseholdReader interface {
	// IsActiveMember reports whether the user has an ACTIVE membership in the household.
	IsActiveMember(ctx context.Context, householdID, userID string) (bool, error)

	// IsAccountShared reports whether the account is shared into the household.
	IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error)

	// FindSharedAccountIDs returns the ids of all accounts shared into the household.
	FindSharedAccountIDs(ctx context.Context, householdID string) ([]string, error)

	// FindSharedAccounts returns the accounts shared into the household, ordered by name.
	FindSharedAccounts(ctx context.Context, householdID string) ([]domain.Account, error)
}
