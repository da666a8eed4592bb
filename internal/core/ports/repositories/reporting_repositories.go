package repositories

import (
	"context"
	"time"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report aggregates
type ReportingRepository interface {
	// MonthlyExpensesByOwner aggregates EXPENSE splits on the owner's accounts dated in [from, to).
	MonthlyExpensesByOwner(ctx context.Context, ownerUserID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error)

	// MonthlyExpensesByHousehold aggregates EXPENSE splits of household transactions dated in [from, to).
	MonthlyExpensesByHousehold(ctx context.Context, householdID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error)

	// DailySplitTotals returns raw debit and credit totals per day for one account over [from, to].
	// Days without activity are omitted.
	DailySplitTotals(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyTotals, error)
}
