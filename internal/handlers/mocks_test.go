package handlers_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) SeedCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	args := m.Called(ctx, currencies)
	return args.Int(0), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PagedTransactionsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PagedTransactionsResponse), args.Error(1)
}

func (m *MockLedgerService) CreateTransactionTx(ctx context.Context, tx pgx.Tx, req dto.CreateTransactionRequest, creatorUserID string) (*domain.LedgerTransaction, error) {
	args := m.Called(ctx, tx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerTransaction), args.Error(1)
}

func (m *MockLedgerService) PublishPosted(ctx context.Context, txn domain.LedgerTransaction) {
	m.Called(ctx, txn)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time, userID string, householdID *string) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, accountID, asOf, userID, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

func (m *MockBalanceService) GetAccountBalances(ctx context.Context, accountIDs []string, asOf time.Time, userID string, householdID *string) ([]dto.BalanceResponse, error) {
	args := m.Called(ctx, accountIDs, asOf, userID, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BalanceResponse), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetMonthlyExpenses(ctx context.Context, userID string, period string, mode string, householdID *string) ([]dto.MonthlyExpenseResponse, error) {
	args := m.Called(ctx, userID, period, mode, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MonthlyExpenseResponse), args.Error(1)
}

func (m *MockReportingService) GetAllAccountBalances(ctx context.Context, userID string, asOf time.Time) ([]dto.AccountBalanceSummaryResponse, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountBalanceSummaryResponse), args.Error(1)
}

func (m *MockReportingService) GetBalanceTimeseries(ctx context.Context, accountID string, dateFrom, dateTo time.Time, userID string) (*dto.BalanceTimeseriesResponse, error) {
	args := m.Called(ctx, accountID, dateFrom, dateTo, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceTimeseriesResponse), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock HouseholdOracle ---
type MockHouseholdOracle struct {
	mock.Mock
}

func (m *MockHouseholdOracle) IsActiveMember(ctx context.Context, householdID, userID string) (bool, error) {
	args := m.Called(ctx, householdID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHouseholdOracle) IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error) {
	args := m.Called(ctx, householdID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHouseholdOracle) SharedAccountIDs(ctx context.Context, householdID string) (map[string]struct{}, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]struct{}), args.Error(1)
}

func (m *MockHouseholdOracle) ListHouseholdAccounts(ctx context.Context, householdID, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, householdID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

var _ portssvc.HouseholdOracle = (*MockHouseholdOracle)(nil)
