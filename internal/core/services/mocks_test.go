package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByOwner(ctx context.Context, ownerUserID string) ([]domain.Account, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// FindAccountsByIDsTx also accepts a func([]string) map[string]domain.Account as return value
// for accounts whose ids are generated during the call under test.
func (m *MockAccountRepository) FindAccountsByIDsTx(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if fn, ok := args.Get(0).(func([]string) map[string]domain.Account); ok {
		return fn(accountIDs), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindOpeningEquityAccountTx(ctx context.Context, tx pgx.Tx, ownerUserID, currencyCode string) (*domain.Account, error) {
	args := m.Called(ctx, tx, ownerUserID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// MockCurrencyRepository is a mock type for the CurrencyRepositoryFacade interface
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) CountCurrencies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

// MockCurrencyRegistry is a mock type for the CurrencyRegistry interface
type MockCurrencyRegistry struct {
	mock.Mock
}

func (m *MockCurrencyRegistry) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRegistry) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// MockCategoryTagRepository is a mock type for the CategoryTagReader interface
type MockCategoryTagRepository struct {
	mock.Mock
}

func (m *MockCategoryTagRepository) FindCategoryTagsByIDs(ctx context.Context, tagIDs []string) (map[string]domain.CategoryTag, error) {
	args := m.Called(ctx, tagIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CategoryTag), args.Error(1)
}

// MockHouseholdOracle is a mock type for the HouseholdOracle interface
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

// MockHouseholdRepository is a mock type for the HouseholdReader interface
type MockHouseholdRepository struct {
	mock.Mock
}

func (m *MockHouseholdRepository) IsActiveMember(ctx context.Context, householdID, userID string) (bool, error) {
	args := m.Called(ctx, householdID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHouseholdRepository) IsAccountShared(ctx context.Context, householdID, accountID string) (bool, error) {
	args := m.Called(ctx, householdID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockHouseholdRepository) FindSharedAccountIDs(ctx context.Context, householdID string) ([]string, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHouseholdRepository) FindSharedAccounts(ctx context.Context, householdID string) ([]domain.Account, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) (map[string]domain.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.User), args.Error(1)
}

func (m *MockUserRepository) LockUserForUpdate(ctx context.Context, tx pgx.Tx, userID string) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListTransactions(ctx context.Context, query portsrepo.TransactionQuery) ([]domain.LedgerTransaction, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockLedgerRepository) SumSplitsByAccounts(ctx context.Context, accountIDs []string, asOf time.Time) (map[string]domain.SplitTotals, error) {
	args := m.Called(ctx, accountIDs, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SplitTotals), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.LedgerTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) MonthlyExpensesByOwner(ctx context.Context, ownerUserID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error) {
	args := m.Called(ctx, ownerUserID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyExpenseRow), args.Error(1)
}

func (m *MockReportingRepository) MonthlyExpensesByHousehold(ctx context.Context, householdID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error) {
	args := m.Called(ctx, householdID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyExpenseRow), args.Error(1)
}

func (m *MockReportingRepository) DailySplitTotals(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyTotals, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTotals), args.Error(1)
}

// MockTxManager is a mock type for the TransactionManager interface.
// Begin hands out a nil pgx.Tx; repositories under test are mocks too.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockEventPublisher is a mock type for the EventPublisher interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishTransactionPosted(ctx context.Context, event domain.TransactionPosted) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

var (
	eur = &domain.Currency{Code: "EUR", MinorUnit: 2, Name: "Euro"}
	usd = &domain.Currency{Code: "USD", MinorUnit: 2, Name: "US Dollar"}
)

func strPtr(s string) *string {
	return &s
}
