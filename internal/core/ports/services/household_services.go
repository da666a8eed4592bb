package services

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// HouseholdOracle answers membership and sharing questions for the ledger.
type HouseholdOracle interface {
	IsActiveMember(ctx context.Context, householdID, userID string) (bool, error)
	IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error)
	SharedAccountIDs(ctx context.Context, householdID string) (map[string]struct{}, error)

	// ListHouseholdAccounts returns the user's own accounts plus those shared into the household.
	ListHouseholdAccounts(ctx context.Context, householdID, userID string) ([]domain.Account, error)
}
