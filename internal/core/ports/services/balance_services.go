package services

import (
	"context"
	"time"

	"github.com/devdecrux/pocketr_api/internal/dto"
)

// BalanceSvc computes normal-balance-aware account balances.
type BalanceSvc interface {
	// GetAccountBalance returns one account's balance as of asOf (inclusive).
	// When householdID is set the account must be shared into that household.
	GetAccountBalance(ctx context.Context, accountID string, asOf time.Time, userID string, householdID *string) (*dto.BalanceResponse, error)

	// GetAccountBalances returns balances for several accounts with a single aggregation.
	GetAccountBalances(ctx context.Context, accountIDs []string, asOf time.Time, userID string, householdID *string) ([]dto.BalanceResponse, error)
}
