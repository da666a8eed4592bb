package repositories

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUsersByIDs retrieves several users keyed by id.
	FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error)
}

// UserTransactionSupport defines user operations that run inside a caller-owned transaction
type UserTransactionSupport interface {
	// LockUserForUpdate takes a row lock on the user until tx ends.
	// Returns apperrors.ErrNotFound if the user does not exist.
	LockUserForUpdate(ctx context.Context, tx pgx.Tx, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserTransactionSupport
}
