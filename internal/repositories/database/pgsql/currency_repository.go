package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	"github.com/devdecrux/pocketr_api/internal/models"
	"github.com/devdecrux/pocketr_api/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT code, minor_unit, name FROM currencies WHERE code = $1;`
	var m models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(&m.CurrencyCode, &m.MinorUnit, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + currencyCode)
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", currencyCode, err)
	}
	c := mapping.ToDomainCurrency(m)
	return &c, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, minor_unit, name FROM currencies ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

// CountCurrencies returns the number of stored currencies.
func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM currencies;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return n, nil
}

// SaveCurrencies inserts currencies in one transaction, skipping codes that already exist.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	if len(currencies) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	for _, c := range currencies {
		m := mapping.ToModelCurrency(c)
		batch.Queue(`
			INSERT INTO currencies (code, minor_unit, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING;
		`, m.CurrencyCode, m.MinorUnit, m.Name)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert currencies: %w", err)
	}
	return r.Commit(ctx, tx)
}
