package services

import (
	"context"
	"time"

	"github.com/devdecrux/pocketr_api/internal/dto"
)

// ReportingService defines operations for generating reports
type ReportingService interface {
	// GetMonthlyExpenses aggregates expense splits for a YYYY-MM period.
	GetMonthlyExpenses(ctx context.Context, userID string, period string, mode string, householdID *string) ([]dto.MonthlyExpenseResponse, error)

	// GetAllAccountBalances returns the balance of every account the user owns.
	GetAllAccountBalances(ctx context.Context, userID string, asOf time.Time) ([]dto.AccountBalanceSummaryResponse, error)

	// GetBalanceTimeseries returns a gap-filled daily balance series for an owned account.
	GetBalanceTimeseries(ctx context.Context, accountID string, dateFrom, dateTo time.Time, userID string) (*dto.BalanceTimeseriesResponse, error)
}
