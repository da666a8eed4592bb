package repositories

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// CategoryTagReader defines read operations for category tags
type CategoryTagReader interface {
	// FindCategoryTagsByIDs retrieves tags by id. Missing ids are absent from the map.
	FindCategoryTagsByIDs(ctx context.Context, tagIDs []string) (map[string]domain.CategoryTag, error)
}
