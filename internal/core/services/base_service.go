package services

import (
	"context"
	"log/slog"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Households portssvc.HouseholdOracle
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeHouseholdMember returns ErrForbidden unless userID is an active member of householdID.
func (s *BaseService) AuthorizeHouseholdMember(ctx context.Context, householdID, userID string) error {
	if s.Households == nil {
		return apperrors.NewAppError(500, "household oracle not configured", nil)
	}
	ok, err := s.Households.IsActiveMember(ctx, householdID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check household membership",
			slog.String("household_id", householdID),
			slog.String("user_id", userID))
		return err
	}
	if !ok {
		s.LogDebug(ctx, "User is not an active household member",
			slog.String("household_id", householdID),
			slog.String("user_id", userID))
		return apperrors.NewForbiddenError("Not an active member of this household")
	}
	return nil
}
