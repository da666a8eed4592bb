package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	"github.com/devdecrux/pocketr_api/internal/models"
	"github.com/devdecrux/pocketr_api/internal/utils/mapping"
)

type PgxHouseholdRepository struct {
	BaseRepository
}

func newPgxHouseholdRepository(pool *pgxpool.Pool) *PgxHouseholdRepository {
	return &PgxHouseholdRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HouseholdReader = (*PgxHouseholdRepository)(nil)

// IsActiveMember reports whether the user has an ACTIVE membership in the household.
func (r *PgxHouseholdRepository) IsActiveMember(ctx context.Context, householdID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM household_members
			WHERE household_id = $1 AND user_id = $2 AND status = $3
		);
	`
	var ok bool
	if err := r.Pool.QueryRow(ctx, query, householdID, userID, string(domain.MemberActive)).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check membership of %s in household %s: %w", userID, householdID, err)
	}
	return ok, nil
}

// IsAccountShared reports whether the account is shared into the household.
func (r *PgxHouseholdRepository) IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM household_account_shares
			WHERE household_id = $1 AND account_id = $2
		);
	`
	var ok bool
	if err := r.Pool.QueryRow(ctx, query, householdID, accountID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check share of account %s in household %s: %w", accountID, householdID, err)
	}
	return ok, nil
}

// FindSharedAccountIDs returns the ids of all accounts shared into the household.
func (r *PgxHouseholdRepository) FindSharedAccountIDs(ctx context.Context, householdID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT account_id::text FROM household_account_shares WHERE household_id = $1;`, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shared accounts of household %s: %w", householdID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan shared account ids: %w", err)
	}
	return ids, nil
}

// FindSharedAccounts returns the accounts shared into the household, ordered by name.
func (r *PgxHouseholdRepository) FindSharedAccounts(ctx context.Context, householdID string) ([]domain.Account, error) {
	query := `
		SELECT a.account_id, a.owner_user_id, a.name, a.account_type, a.currency_code, a.created_at
		FROM household_account_shares s
		JOIN accounts a ON a.account_id = s.account_id
		WHERE s.household_id = $1
		ORDER BY a.name, a.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shared accounts of household %s: %w", householdID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan shared accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(ms), nil
}
