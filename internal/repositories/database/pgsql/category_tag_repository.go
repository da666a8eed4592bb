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

type PgxCategoryTagRepository struct {
	BaseRepository
}

func newPgxCategoryTagRepository(pool *pgxpool.Pool) *PgxCategoryTagRepository {
	return &PgxCategoryTagRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryTagReader = (*PgxCategoryTagRepository)(nil)

// FindCategoryTagsByIDs retrieves tags keyed by id.
func (r *PgxCategoryTagRepository) FindCategoryTagsByIDs(ctx context.Context, tagIDs []string) (map[string]domain.CategoryTag, error) {
	if len(tagIDs) == 0 {
		return map[string]domain.CategoryTag{}, nil
	}
	query := `
		SELECT category_tag_id, owner_user_id, name, color, created_at
		FROM category_tags
		WHERE category_tag_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query category tags: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CategoryTag])
	if err != nil {
		return nil, fmt.Errorf("failed to scan category tags: %w", err)
	}
	out := make(map[string]domain.CategoryTag, len(ms))
	for _, m := range ms {
		out[m.CategoryTagID] = mapping.ToDomainCategoryTag(m)
	}
	return out, nil
}
