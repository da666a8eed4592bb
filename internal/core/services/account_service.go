package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	accountRepo    portsrepo.AccountRepositoryFacade
	currencies     portssvc.CurrencyRegistry
	openingBalance *OpeningBalanceService
	now            func() time.Time
}

// AccountOption is a functional option for configuring the account service
type AccountOption func(*accountService)

// WithAccountClock overrides the clock used for creation timestamps and the default opening date.
func WithAccountClock(now func() time.Time) AccountOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	txManager portsrepo.TransactionManager,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencies portssvc.CurrencyRegistry,
	openingBalance *OpeningBalanceService,
	options ...AccountOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		txManager:      txManager,
		accountRepo:    accountRepo,
		currencies:     currencies,
		openingBalance: openingBalance,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewInvalidTransactionError("Account name is required")
	}
	accountType, ok := domain.ParseAccountType(req.Type)
	if !ok {
		return nil, apperrors.NewInvalidTransactionError("Invalid account type: %s", req.Type)
	}
	if accountType == domain.Equity {
		return nil, apperrors.NewInvalidTransactionError("EQUITY accounts cannot be created manually")
	}

	currencyCode := strings.ToUpper(strings.TrimSpace(req.Currency))
	if _, err := s.currencies.GetCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidTransactionError("Invalid currency: %s", req.Currency)
		}
		return nil, err
	}

	if req.OpeningBalanceMinor != 0 && accountType != domain.Asset {
		return nil, apperrors.NewInvalidTransactionError("Opening balance is supported only for ASSET accounts")
	}
	if req.OpeningBalanceDate != nil && !req.OpeningBalanceDate.IsZero() && req.OpeningBalanceMinor == 0 {
		return nil, apperrors.NewInvalidTransactionError("openingBalanceDate requires a non-zero openingBalanceMinor")
	}

	now := s.now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		OwnerUserID:  userID,
		Name:         name,
		AccountType:  accountType,
		CurrencyCode: currencyCode,
		CreatedAt:    now,
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin account transaction", slog.String("user_id", userID))
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := s.txManager.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to rollback account transaction")
			}
		}
	}()

	if err := s.accountRepo.SaveAccountTx(ctx, tx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.AccountID),
			slog.String("user_id", userID))
		return nil, err
	}

	var opening *domain.LedgerTransaction
	if req.OpeningBalanceMinor != 0 {
		date := now
		if req.OpeningBalanceDate != nil && !req.OpeningBalanceDate.IsZero() {
			date = req.OpeningBalanceDate.Time
		}
		opening, err = s.openingBalance.PostOpeningBalance(ctx, tx, userID, account, req.OpeningBalanceMinor, date)
		if err != nil {
			return nil, err
		}
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit account transaction", slog.String("account_id", account.AccountID))
		return nil, err
	}
	committed = true

	if opening != nil {
		s.openingBalance.PublishPosted(ctx, *opening)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", userID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if !account.IsOwnedBy(userID) {
		return nil, apperrors.NewForbiddenError("Not the owner of this account")
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
