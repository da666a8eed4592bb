package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

type balanceService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	ledgerRepo  portsrepo.LedgerReader
	currencies  portssvc.CurrencyRegistry
}

// NewBalanceService creates a new balance service.
func NewBalanceService(
	accountRepo portsrepo.AccountReader,
	ledgerRepo portsrepo.LedgerReader,
	currencies portssvc.CurrencyRegistry,
	households portssvc.HouseholdOracle,
) portssvc.BalanceSvc {
	return &balanceService{
		BaseService: BaseService{Households: households},
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		currencies:  currencies,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time, userID string, householdID *string) (*dto.BalanceResponse, error) {
	balances, err := s.GetAccountBalances(ctx, []string{accountID}, asOf, userID, householdID)
	if err != nil {
		return nil, err
	}
	return &balances[0], nil
}

func (s *balanceService) GetAccountBalances(ctx context.Context, accountIDs []string, asOf time.Time, userID string, householdID *string) ([]dto.BalanceResponse, error) {
	if len(accountIDs) == 0 {
		return []dto.BalanceResponse{}, nil
	}
	ids := distinct(accountIDs)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for balance")
		return nil, err
	}
	if missing := missingKeys(ids, accounts); len(missing) > 0 {
		return nil, apperrors.NewNotFoundError("Account not found")
	}

	if householdID != nil && *householdID != "" {
		if err := s.AuthorizeHouseholdMember(ctx, *householdID, userID); err != nil {
			return nil, err
		}
		shared, err := s.Households.SharedAccountIDs(ctx, *householdID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load shared accounts", slog.String("household_id", *householdID))
			return nil, err
		}
		for _, id := range ids {
			if _, ok := shared[id]; !ok {
				return nil, apperrors.NewForbiddenError("Account is not shared into this household")
			}
		}
	} else {
		for _, id := range ids {
			if !accounts[id].IsOwnedBy(userID) {
				return nil, apperrors.NewForbiddenError("Not the owner of this account")
			}
		}
	}

	totals, err := s.ledgerRepo.SumSplitsByAccounts(ctx, ids, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate splits", slog.Int("account_count", len(ids)))
		return nil, err
	}

	out := make([]dto.BalanceResponse, 0, len(ids))
	for _, id := range ids {
		acc := accounts[id]
		currency, err := s.currencies.GetCurrencyByCode(ctx, acc.CurrencyCode)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve account currency", slog.String("currency", acc.CurrencyCode))
			return nil, err
		}
		t := totals[id]
		balance := domain.AccountBalance{
			Account:      acc,
			BalanceMinor: domain.SignedBalance(acc.AccountType, t.DebitMinor, t.CreditMinor),
			AsOf:         asOf,
		}
		out = append(out, dto.ToBalanceResponse(balance, *currency))
	}
	return out, nil
}
