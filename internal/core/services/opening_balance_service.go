package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

// OpeningBalanceService posts the initial balance of an asset account against the owner's
// Opening Equity account for the same currency.
type OpeningBalanceService struct {
	BaseService
	userRepo    portsrepo.UserTransactionSupport
	accountRepo portsrepo.AccountTransactionSupport
	ledger      portssvc.LedgerTxPosterSvc
	now         func() time.Time
}

// NewOpeningBalanceService creates a new OpeningBalanceService.
func NewOpeningBalanceService(
	userRepo portsrepo.UserTransactionSupport,
	accountRepo portsrepo.AccountTransactionSupport,
	ledger portssvc.LedgerTxPosterSvc,
) *OpeningBalanceService {
	return &OpeningBalanceService{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		ledger:      ledger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// PostOpeningBalance writes the opening posting within tx. The owner row is locked first so two
// concurrent calls cannot both create an Opening Equity account.
func (s *OpeningBalanceService) PostOpeningBalance(ctx context.Context, tx pgx.Tx, userID string, asset domain.Account, amountMinor int64, date time.Time) (*domain.LedgerTransaction, error) {
	if asset.AccountType != domain.Asset {
		return nil, apperrors.NewInvalidTransactionError("Opening balance is supported only for ASSET accounts")
	}
	if amountMinor == 0 {
		return nil, apperrors.NewInvalidTransactionError("openingBalanceMinor must not be zero")
	}
	if amountMinor == math.MinInt64 {
		return nil, apperrors.NewInvalidTransactionError("openingBalanceMinor is out of supported range")
	}

	if err := s.userRepo.LockUserForUpdate(ctx, tx, userID); err != nil {
		s.LogError(ctx, err, "Failed to lock user for opening balance", slog.String("user_id", userID))
		return nil, err
	}

	equity, err := s.findOrCreateOpeningEquity(ctx, tx, userID, asset.CurrencyCode)
	if err != nil {
		return nil, err
	}

	assetSide, amount := domain.Debit, amountMinor
	if amountMinor < 0 {
		assetSide, amount = domain.Credit, -amountMinor
	}

	req := dto.CreateTransactionRequest{
		Mode:        string(domain.ModeIndividual),
		TxnDate:     dto.NewLocalDate(date),
		Currency:    asset.CurrencyCode,
		Description: "Opening balance - " + asset.Name,
		Splits: []dto.CreateSplitRequest{
			{AccountID: asset.AccountID, Side: string(assetSide), AmountMinor: amount},
			{AccountID: equity.AccountID, Side: string(assetSide.Opposite()), AmountMinor: amount},
		},
	}
	txn, err := s.ledger.CreateTransactionTx(ctx, tx, req, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to post opening balance", slog.String("account_id", asset.AccountID))
		return nil, err
	}
	s.LogInfo(ctx, "Opening balance posted",
		slog.String("account_id", asset.AccountID),
		slog.String("transaction_id", txn.TransactionID))
	return txn, nil
}

// PublishPosted announces an opening posting once its transaction has committed.
func (s *OpeningBalanceService) PublishPosted(ctx context.Context, txn domain.LedgerTransaction) {
	s.ledger.PublishPosted(ctx, txn)
}

func (s *OpeningBalanceService) findOrCreateOpeningEquity(ctx context.Context, tx pgx.Tx, userID, currencyCode string) (*domain.Account, error) {
	equity, err := s.accountRepo.FindOpeningEquityAccountTx(ctx, tx, userID, currencyCode)
	if err == nil {
		return equity, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to find opening equity account", slog.String("user_id", userID))
		return nil, err
	}

	created := domain.Account{
		AccountID:    uuid.NewString(),
		OwnerUserID:  userID,
		Name:         domain.OpeningEquityAccountName,
		AccountType:  domain.Equity,
		CurrencyCode: currencyCode,
		CreatedAt:    s.now(),
	}
	if err := s.accountRepo.SaveAccountTx(ctx, tx, created); err != nil {
		s.LogError(ctx, err, "Failed to create opening equity account", slog.String("user_id", userID))
		return nil, err
	}
	s.LogDebug(ctx, "Created opening equity account",
		slog.String("user_id", userID),
		slog.String("currency", currencyCode))
	return &created, nil
}
