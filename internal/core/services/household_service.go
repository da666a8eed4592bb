package services

import (
	"context"
	"log/slog"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
)

type householdService struct {
	BaseService
	householdRepo portsrepo.HouseholdReader
	accountRepo   portsrepo.AccountReader
}

// NewHouseholdService creates the household membership oracle.
func NewHouseholdService(householdRepo portsrepo.HouseholdReader, accountRepo portsrepo.AccountReader) portssvc.HouseholdOracle {
	return &householdService{householdRepo: householdRepo, accountRepo: accountRepo}
}

var _ portssvc.HouseholdOracle = (*householdService)(nil)

func (s *householdService) IsActiveMember(ctx context.Context, householdID, userID string) (bool, error) {
	return s.householdRepo.IsActiveMember(ctx, householdID, userID)
}

func (s *householdService) IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error) {
	return s.householdRepo.IsAccountShared(ctx, householdID, accountID)
}

func (s *householdService) SharedAccountIDs(ctx context.Context, householdID string) (map[string]struct{}, error) {
	ids, err := s.householdRepo.FindSharedAccountIDs(ctx, householdID)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (s *householdService) ListHouseholdAccounts(ctx context.Context, householdID, userID string) ([]domain.Account, error) {
	ok, err := s.householdRepo.IsActiveMember(ctx, householdID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check household membership", slog.String("household_id", householdID))
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Not an active member of this household")
	}

	own, err := s.accountRepo.FindAccountsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own accounts", slog.String("user_id", userID))
		return nil, err
	}
	shared, err := s.householdRepo.FindSharedAccounts(ctx, householdID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shared accounts", slog.String("household_id", householdID))
		return nil, err
	}

	seen := make(map[string]struct{}, len(own)+len(shared))
	out := make([]domain.Account, 0, len(own)+len(shared))
	for _, list := range [][]domain.Account{own, shared} {
		for _, acc := range list {
			if _, dup := seen[acc.AccountID]; dup {
				continue
			}
			seen[acc.AccountID] = struct{}{}
			out = append(out, acc)
		}
	}
	return out, nil
}
