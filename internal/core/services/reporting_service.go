package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

// DefaultMaxTimeseriesDays bounds the number of points a single timeseries request may produce.
const DefaultMaxTimeseriesDays = 3660

const periodLayout = "2006-01"

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountReader
	ledgerRepo    portsrepo.LedgerReader
	currencies    portssvc.CurrencyRegistry
	maxDays       int
}

// ReportingOption is a functional option for configuring the reporting service
type ReportingOption func(*reportingService)

// WithMaxTimeseriesDays caps the length of a balance timeseries range.
func WithMaxTimeseriesDays(days int) ReportingOption {
	return func(s *reportingService) {
		if days > 0 {
			s.maxDays = days
		}
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	accountRepo portsrepo.AccountReader,
	ledgerRepo portsrepo.LedgerReader,
	currencies portssvc.CurrencyRegistry,
	households portssvc.HouseholdOracle,
	options ...ReportingOption,
) portssvc.ReportingService {
	svc := &reportingService{
		BaseService:   BaseService{Households: households},
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		ledgerRepo:    ledgerRepo,
		currencies:    currencies,
		maxDays:       DefaultMaxTimeseriesDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetMonthlyExpenses(ctx context.Context, userID string, period string, mode string, householdID *string) ([]dto.MonthlyExpenseResponse, error) {
	start, err := time.Parse(periodLayout, strings.TrimSpace(period))
	if err != nil {
		return nil, apperrors.NewInvalidTransactionError("Invalid period: %s. Expected format YYYY-MM", period)
	}
	end := start.AddDate(0, 1, 0)

	txnMode, ok := domain.ParseTxnMode(mode)
	if !ok {
		return nil, apperrors.NewInvalidTransactionError("Invalid mode: %s. Must be INDIVIDUAL or HOUSEHOLD", mode)
	}

	var rows []domain.MonthlyExpenseRow
	if txnMode == domain.ModeHousehold {
		if householdID == nil || *householdID == "" {
			return nil, apperrors.NewInvalidTransactionError("householdId is required for household mode")
		}
		if err := s.AuthorizeHouseholdMember(ctx, *householdID, userID); err != nil {
			return nil, err
		}
		rows, err = s.reportingRepo.MonthlyExpensesByHousehold(ctx, *householdID, start, end)
	} else {
		rows, err = s.reportingRepo.MonthlyExpensesByOwner(ctx, userID, start, end)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate monthly expenses",
			slog.String("user_id", userID),
			slog.String("period", period))
		return nil, err
	}

	out := make([]dto.MonthlyExpenseResponse, 0, len(rows))
	for _, row := range rows {
		currency, err := s.currencies.GetCurrencyByCode(ctx, row.CurrencyCode)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.ToMonthlyExpenseResponse(row, *currency))
	}
	return out, nil
}

func (s *reportingService) GetAllAccountBalances(ctx context.Context, userID string, asOf time.Time) ([]dto.AccountBalanceSummaryResponse, error) {
	accounts, err := s.accountRepo.FindAccountsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for balance report", slog.String("user_id", userID))
		return nil, err
	}
	if len(accounts) == 0 {
		return []dto.AccountBalanceSummaryResponse{}, nil
	}

	ids := make([]string, len(accounts))
	for i, acc := range accounts {
		ids[i] = acc.AccountID
	}
	totals, err := s.ledgerRepo.SumSplitsByAccounts(ctx, ids, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate splits for balance report", slog.String("user_id", userID))
		return nil, err
	}

	out := make([]dto.AccountBalanceSummaryResponse, 0, len(accounts))
	for _, acc := range accounts {
		currency, err := s.currencies.GetCurrencyByCode(ctx, acc.CurrencyCode)
		if err != nil {
			return nil, err
		}
		t := totals[acc.AccountID]
		out = append(out, dto.ToAccountBalanceSummaryResponse(domain.AccountBalance{
			Account:      acc,
			BalanceMinor: domain.SignedBalance(acc.AccountType, t.DebitMinor, t.CreditMinor),
			AsOf:         asOf,
		}, *currency))
	}
	return out, nil
}

func (s *reportingService) GetBalanceTimeseries(ctx context.Context, accountID string, dateFrom, dateTo time.Time, userID string) (*dto.BalanceTimeseriesResponse, error) {
	from := truncateDay(dateFrom)
	to := truncateDay(dateTo)
	if from.After(to) {
		return nil, apperrors.NewInvalidTransactionError("dateFrom must be before or equal to dateTo")
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > s.maxDays {
		return nil, apperrors.NewInvalidTransactionError("Date range must not exceed %d days", s.maxDays)
	}

	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, apperrors.NewNotFoundError("Account not found")
	}
	if !acc.IsOwnedBy(userID) {
		return nil, apperrors.NewForbiddenError("Not the owner of this account")
	}

	opening, err := s.ledgerRepo.SumSplitsByAccounts(ctx, []string{acc.AccountID}, from.AddDate(0, 0, -1))
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", acc.AccountID))
		return nil, err
	}
	ot := opening[acc.AccountID]
	running := domain.SignedBalance(acc.AccountType, ot.DebitMinor, ot.CreditMinor)

	daily, err := s.reportingRepo.DailySplitTotals(ctx, acc.AccountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load daily split totals", slog.String("account_id", acc.AccountID))
		return nil, err
	}
	nets := make(map[time.Time]int64, len(daily))
	for _, d := range daily {
		nets[truncateDay(d.Date)] += domain.SignedBalance(acc.AccountType, d.DebitMinor, d.CreditMinor)
	}

	ts := domain.BalanceTimeseries{Account: *acc}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		running += nets[day]
		ts.Points = append(ts.Points, domain.BalancePoint{Date: day, BalanceMinor: running})
	}

	resp := dto.ToBalanceTimeseriesResponse(ts)
	return &resp, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
