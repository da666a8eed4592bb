package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/core/services"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	ledgerRepo  *MockLedgerRepository
	currencies  *MockCurrencyRegistry
	households  *MockHouseholdOracle
	service     portssvc.BalanceSvc
	ctx         context.Context
	asOf        time.Time

	checking domain.Account
	card     domain.Account
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.currencies = new(MockCurrencyRegistry)
	suite.households = new(MockHouseholdOracle)
	suite.service = services.NewBalanceService(suite.accountRepo, suite.ledgerRepo, suite.currencies, suite.households)
	suite.ctx = context.Background()
	suite.asOf = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.checking = domain.Account{AccountID: "chk", OwnerUserID: "alice", Name: "Checking", AccountType: domain.Asset, CurrencyCode: "EUR"}
	suite.card = domain.Account{AccountID: "card", OwnerUserID: "alice", Name: "Card", AccountType: domain.Liability, CurrencyCode: "EUR"}
	suite.currencies.On("GetCurrencyByCode", mock.Anything, "EUR").Return(eur, nil).Maybe()
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalances_NormalBalanceSigns() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"chk", "card"}).
		Return(map[string]domain.Account{"chk": suite.checking, "card": suite.card}, nil).Once()
	suite.ledgerRepo.On("SumSplitsByAccounts", mock.Anything, []string{"chk", "card"}, suite.asOf).
		Return(map[string]domain.SplitTotals{
			"chk":  {AccountID: "chk", DebitMinor: 1000, CreditMinor: 400},
			"card": {AccountID: "card", DebitMinor: 300, CreditMinor: 1000},
		}, nil).Once()

	balances, err := suite.service.GetAccountBalances(suite.ctx, []string{"chk", "card", "chk"}, suite.asOf, "alice", nil)

	suite.Require().NoError(err)
	suite.Require().Len(balances, 2)
	suite.Equal("chk", balances[0].AccountID)
	suite.Equal(int64(600), balances[0].BalanceMinor)
	suite.Equal("6.00", balances[0].Amount)
	suite.Equal("card", balances[1].AccountID)
	suite.Equal(int64(700), balances[1].BalanceMinor)
	suite.Equal("2026-03-31", balances[1].AsOf.Format("2006-01-02"))
	suite.ledgerRepo.AssertNumberOfCalls(suite.T(), "SumSplitsByAccounts", 1)
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalance_NoActivity() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"chk"}).
		Return(map[string]domain.Account{"chk": suite.checking}, nil).Once()
	suite.ledgerRepo.On("SumSplitsByAccounts", mock.Anything, []string{"chk"}, suite.asOf).
		Return(map[string]domain.SplitTotals{}, nil).Once()

	balance, err := suite.service.GetAccountBalance(suite.ctx, "chk", suite.asOf, "alice", nil)

	suite.Require().NoError(err)
	suite.Equal(int64(0), balance.BalanceMinor)
	suite.Equal("Checking", balance.AccountName)
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalances_Empty() {
	balances, err := suite.service.GetAccountBalances(suite.ctx, nil, suite.asOf, "alice", nil)

	suite.Require().NoError(err)
	suite.Empty(balances)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalance_NotFound() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"nope"}).
		Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.GetAccountBalance(suite.ctx, "nope", suite.asOf, "alice", nil)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Account not found", apperrors.Message(err))
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalance_NotOwner() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"chk"}).
		Return(map[string]domain.Account{"chk": suite.checking}, nil).Once()

	_, err := suite.service.GetAccountBalance(suite.ctx, "chk", suite.asOf, "bob", nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("Not the owner of this account", apperrors.Message(err))
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SumSplitsByAccounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalance_HouseholdShared() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"chk"}).
		Return(map[string]domain.Account{"chk": suite.checking}, nil).Once()
	suite.households.On("IsActiveMember", mock.Anything, "h1", "bob").Return(true, nil).Once()
	suite.households.On("SharedAccountIDs", mock.Anything, "h1").Return(map[string]struct{}{"chk": {}}, nil).Once()
	suite.ledgerRepo.On("SumSplitsByAccounts", mock.Anything, []string{"chk"}, suite.asOf).
		Return(map[string]domain.SplitTotals{"chk": {DebitMinor: 250}}, nil).Once()

	balance, err := suite.service.GetAccountBalance(suite.ctx, "chk", suite.asOf, "bob", strPtr("h1"))

	suite.Require().NoError(err)
	suite.Equal(int64(250), balance.BalanceMinor)
}

func (suite *BalanceServiceTestSuite) TestGetAccountBalance_HouseholdNotShared() {
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []string{"card"}).
		Return(map[string]domain.Account{"card": suite.card}, nil).Once()
	suite.households.On("IsActiveMember", mock.Anything, "h1", "alice").Return(true, nil).Once()
	suite.households.On("SharedAccountIDs", mock.Anything, "h1").Return(map[string]struct{}{"chk": {}}, nil).Once()

	_, err := suite.service.GetAccountBalance(suite.ctx, "card", suite.asOf, "alice", strPtr("h1"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("Account is not shared into this household", apperrors.Message(err))
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
