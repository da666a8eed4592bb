package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
)

// TransactionPolicy decides which accounts a user may post against.
type TransactionPolicy struct {
	BaseService
	crossUserTypes map[domain.AccountType]bool
}

// PolicyOption is a functional option for configuring the transaction policy
type PolicyOption func(*TransactionPolicy)

// WithCrossUserAccountTypes sets which account types may appear in a transaction that touches
// accounts owned by someone other than the poster. Defaults to ASSET only.
func WithCrossUserAccountTypes(types ...domain.AccountType) PolicyOption {
	return func(p *TransactionPolicy) {
		p.crossUserTypes = make(map[domain.AccountType]bool, len(types))
		for _, t := range types {
			p.crossUserTypes[t] = true
		}
	}
}

// NewTransactionPolicy creates a TransactionPolicy backed by the household oracle.
func NewTransactionPolicy(households portssvc.HouseholdOracle, options ...PolicyOption) *TransactionPolicy {
	p := &TransactionPolicy{
		BaseService:    BaseService{Households: households},
		crossUserTypes: map[domain.AccountType]bool{domain.Asset: true},
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// CheckAccountAccess authorizes userID to post against accounts.
func (p *TransactionPolicy) CheckAccountAccess(ctx context.Context, accounts []domain.Account, userID string, householdMode bool, householdID *string) error {
	var notOwned []domain.Account
	for _, acc := range accounts {
		if !acc.IsOwnedBy(userID) {
			notOwned = append(notOwned, acc)
		}
	}
	if len(notOwned) == 0 {
		return nil
	}

	if !householdMode {
		return apperrors.NewForbiddenError("Cannot post to accounts not owned by current user in individual mode")
	}
	if householdID == nil || *householdID == "" {
		return apperrors.NewInvalidTransactionError("householdId is required for household mode")
	}

	if err := p.AuthorizeHouseholdMember(ctx, *householdID, userID); err != nil {
		return err
	}

	for _, acc := range notOwned {
		shared, err := p.Households.IsAccountShared(ctx, *householdID, acc.AccountID)
		if err != nil {
			p.LogError(ctx, err, "Failed to check account sharing",
				slog.String("household_id", *householdID),
				slog.String("account_id", acc.AccountID))
			return err
		}
		if !shared {
			return apperrors.NewForbiddenError("Account '" + acc.Name + "' is not shared into household")
		}
	}

	for _, acc := range accounts {
		if !p.crossUserTypes[acc.AccountType] {
			return apperrors.NewInvalidTransactionError(
				"Cross-user transfers only allow %s accounts (v1), but '%s' is %s",
				p.allowedTypesLabel(), acc.Name, acc.AccountType)
		}
	}
	return nil
}

func (p *TransactionPolicy) allowedTypesLabel() string {
	names := make([]string, 0, len(p.crossUserTypes))
	for _, t := range domain.AllAccountTypes() {
		if p.crossUserTypes[t] {
			names = append(names, string(t))
		}
	}
	return strings.Join(names, "/")
}
