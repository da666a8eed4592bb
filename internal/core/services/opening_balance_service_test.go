package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/core/services"
)

type OpeningBalanceServiceTestSuite struct {
	suite.Suite
	userRepo    *MockUserRepository
	accountRepo *MockAccountRepository
	ledgerRepo  *MockLedgerRepository
	currencies  *MockCurrencyRegistry
	households  *MockHouseholdOracle
	events      *MockEventPublisher
	service     *services.OpeningBalanceService
	ctx         context.Context

	savings domain.Account
	equity  domain.Account
	date    time.Time
}

func (suite *OpeningBalanceServiceTestSuite) SetupTest() {
	suite.userRepo = new(MockUserRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.currencies = new(MockCurrencyRegistry)
	suite.households = new(MockHouseholdOracle)
	suite.events = new(MockEventPublisher)
	suite.ctx = context.Background()

	ledger := services.NewLedgerService(
		suite.ledgerRepo,
		suite.accountRepo,
		new(MockCategoryTagRepository),
		suite.userRepo,
		suite.currencies,
		suite.households,
		services.WithLedgerEventPublisher(suite.events),
	)
	suite.service = services.NewOpeningBalanceService(suite.userRepo, suite.accountRepo, ledger)

	suite.savings = domain.Account{AccountID: "sav", OwnerUserID: "alice", Name: "Savings", AccountType: domain.Asset, CurrencyCode: "EUR"}
	suite.equity = domain.Account{AccountID: "eq", OwnerUserID: "alice", Name: domain.OpeningEquityAccountName, AccountType: domain.Equity, CurrencyCode: "EUR"}
	suite.date = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.currencies.On("GetCurrencyByCode", mock.Anything, "EUR").Return(eur, nil).Maybe()
}

// balances replays the posted splits through the normal-balance rules.
func balances(txn *domain.LedgerTransaction, accounts ...domain.Account) map[string]int64 {
	types := map[string]domain.AccountType{}
	for _, a := range accounts {
		types[a.AccountID] = a.AccountType
	}
	out := map[string]int64{}
	for _, s := range txn.Splits {
		out[s.AccountID] += domain.EffectMinor(s.Side, types[s.AccountID], s.AmountMinor)
	}
	return out
}

func (suite *OpeningBalanceServiceTestSuite) TestPostOpeningBalance_PositiveWithExistingEquity() {
	suite.userRepo.On("LockUserForUpdate", mock.Anything, mock.Anything, "alice").Return(nil).Once()
	suite.accountRepo.On("FindOpeningEquityAccountTx", mock.Anything, mock.Anything, "alice", "EUR").Return(&suite.equity, nil).Once()
	suite.accountRepo.On("FindAccountsByIDsTx", mock.Anything, mock.Anything, []string{"sav", "eq"}).
		Return(map[string]domain.Account{"sav": suite.savings, "eq": suite.equity}, nil).Once()
	suite.ledgerRepo.On("SaveTransactionTx", mock.Anything, mock.Anything, mock.AnythingOfType("domain.LedgerTransaction")).Return(nil).Once()

	txn, err := suite.service.PostOpeningBalance(suite.ctx, nil, "alice", suite.savings, 250000, suite.date)

	suite.Require().NoError(err)
	suite.Equal("Opening balance - Savings", txn.Description)
	suite.Equal("alice", txn.CreatedBy)
	suite.Nil(txn.HouseholdID)
	suite.Equal(suite.date, txn.TxnDate)
	suite.Equal(domain.Debit, txn.Splits[0].Side)
	suite.Equal(domain.Credit, txn.Splits[1].Side)
	suite.NoError(services.NewTransactionValidator().ValidateSplits(txn.Splits))

	got := balances(txn, suite.savings, suite.equity)
	suite.Equal(int64(250000), got["sav"])
	suite.Equal(int64(250000), got["eq"])
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccountTx", mock.Anything, mock.Anything, mock.Anything)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.events.AssertNotCalled(suite.T(), "PublishTransactionPosted", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestPostOpeningBalance_NegativeCreatesEquity() {
	var created domain.Account
	suite.userRepo.On("LockUserForUpdate", mock.Anything, mock.Anything, "alice").Return(nil).Once()
	suite.accountRepo.On("FindOpeningEquityAccountTx", mock.Anything, mock.Anything, "alice", "EUR").
		Return(nil, apperrors.NewNotFoundError("opening equity account")).Once()
	suite.accountRepo.On("SaveAccountTx", mock.Anything, mock.Anything, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountType == domain.Equity && a.Name == "Opening Equity" && a.CurrencyCode == "EUR" && a.OwnerUserID == "alice"
	})).Run(func(args mock.Arguments) {
		created = args.Get(2).(domain.Account)
	}).Return(nil).Once()
	suite.accountRepo.On("FindAccountsByIDsTx", mock.Anything, mock.Anything, mock.Anything).
		Return(func(ids []string) map[string]domain.Account {
			return map[string]domain.Account{"sav": suite.savings, created.AccountID: created}
		}, nil).Once()
	suite.ledgerRepo.On("SaveTransactionTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	txn, err := suite.service.PostOpeningBalance(suite.ctx, nil, "alice", suite.savings, -4200, suite.date)

	suite.Require().NoError(err)
	suite.Equal(domain.Credit, txn.Splits[0].Side)
	suite.Equal(int64(4200), txn.Splits[0].AmountMinor)
	suite.Equal(domain.Debit, txn.Splits[1].Side)
	suite.Equal(created.AccountID, txn.Splits[1].AccountID)

	got := balances(txn, suite.savings, created)
	suite.Equal(int64(-4200), got["sav"])
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *OpeningBalanceServiceTestSuite) TestPostOpeningBalance_Rejections() {
	card := domain.Account{AccountID: "card", Name: "Card", AccountType: domain.Liability, CurrencyCode: "EUR"}

	tests := []struct {
		name    string
		account domain.Account
		amount  int64
		wantMsg string
	}{
		{"not asset", card, 100, "Opening balance is supported only for ASSET accounts"},
		{"zero", suite.savings, 0, "openingBalanceMinor must not be zero"},
		{"min int64", suite.savings, math.MinInt64, "openingBalanceMinor is out of supported range"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.PostOpeningBalance(suite.ctx, nil, "alice", tt.account, tt.amount, suite.date)
			suite.ErrorIs(err, apperrors.ErrInvalidTransaction)
			suite.Equal(tt.wantMsg, apperrors.Message(err))
		})
	}
	suite.userRepo.AssertNotCalled(suite.T(), "LockUserForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestPostOpeningBalance_LedgerRulesApply() {
	xxx := suite.savings
	xxx.CurrencyCode = "XXX"
	suite.userRepo.On("LockUserForUpdate", mock.Anything, mock.Anything, "alice").Return(nil).Once()
	suite.accountRepo.On("FindOpeningEquityAccountTx", mock.Anything, mock.Anything, "alice", "XXX").Return(&suite.equity, nil).Once()
	suite.currencies.On("GetCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.NewNotFoundError("currency XXX")).Once()

	_, err := suite.service.PostOpeningBalance(suite.ctx, nil, "alice", xxx, 100, suite.date)

	suite.ErrorIs(err, apperrors.ErrInvalidTransaction)
	suite.Equal("Invalid currency: XXX", apperrors.Message(err))
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveTransactionTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestPostOpeningBalance_UnknownUser() {
	suite.userRepo.On("LockUserForUpdate", mock.Anything, mock.Anything, "ghost").
		Return(apperrors.NewNotFoundError("user ghost")).Once()

	_, err := suite.service.PostOpeningBalance(suite.ctx, nil, "ghost", suite.savings, 100, suite.date)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveTransactionTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestPublishPosted() {
	txn := domain.LedgerTransaction{TransactionID: "t1", CreatedBy: "alice", TxnDate: suite.date, CurrencyCode: "EUR"}
	suite.events.On("PublishTransactionPosted", mock.Anything, mock.MatchedBy(func(e domain.TransactionPosted) bool {
		return e.TransactionID == "t1" && e.TxnDate == "2026-01-01"
	})).Return(nil).Once()

	suite.service.PublishPosted(suite.ctx, txn)

	suite.events.AssertExpectations(suite.T())
}

func TestOpeningBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningBalanceServiceTestSuite))
}
