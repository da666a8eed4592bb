package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
	"github.com/devdecrux/pocketr_api/internal/utils/pagination"
)

// ledgerService posts and lists ledger transactions.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountFinder
	tagRepo     portsrepo.CategoryTagReader
	userRepo    portsrepo.UserReader
	currencies  portssvc.CurrencyRegistry
	validator   TransactionValidator
	policy      *TransactionPolicy
	events      portssvc.EventPublisher
	now         func() time.Time
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*ledgerService)

// WithLedgerEventPublisher publishes a TransactionPosted event after each commit.
func WithLedgerEventPublisher(p portssvc.EventPublisher) LedgerOption {
	return func(s *ledgerService) {
		s.events = p
	}
}

// WithLedgerPolicy replaces the default transaction policy.
func WithLedgerPolicy(p *TransactionPolicy) LedgerOption {
	return func(s *ledgerService) {
		s.policy = p
	}
}

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	accountRepo portsrepo.AccountFinder,
	tagRepo portsrepo.CategoryTagReader,
	userRepo portsrepo.UserReader,
	currencies portssvc.CurrencyRegistry,
	households portssvc.HouseholdOracle,
	options ...LedgerOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: BaseService{Households: households},
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		currencies:  currencies,
		validator:   NewTransactionValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	if svc.policy == nil {
		svc.policy = NewTransactionPolicy(households)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func isHouseholdMode(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), string(domain.ModeHousehold))
}

// posting is a validated, authorized transaction ready to be written, plus the
// references resolved while checking it.
type posting struct {
	txn      domain.LedgerTransaction
	accounts map[string]domain.Account
	tags     map[string]domain.CategoryTag
}

type accountLookup func(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

// CreateTransaction implements portssvc.LedgerWriterSvc
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*dto.TransactionResponse, error) {
	p, err := s.preparePosting(ctx, req, creatorUserID, s.accountRepo.FindAccountsByIDs)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, p.txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", p.txn.TransactionID))
		return nil, err
	}
	s.logPosted(ctx, p.txn)
	s.PublishPosted(ctx, p.txn)

	lookups := dto.TransactionLookups{Accounts: p.accounts, Tags: p.tags, Users: s.findUsers(ctx, []string{creatorUserID})}
	resp := dto.ToTransactionResponse(p.txn, lookups)
	return &resp, nil
}

// CreateTransactionTx implements portssvc.LedgerTxPosterSvc
func (s *ledgerService) CreateTransactionTx(ctx context.Context, tx pgx.Tx, req dto.CreateTransactionRequest, creatorUserID string) (*domain.LedgerTransaction, error) {
	findInTx := func(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
		return s.accountRepo.FindAccountsByIDsTx(ctx, tx, accountIDs)
	}
	p, err := s.preparePosting(ctx, req, creatorUserID, findInTx)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.SaveTransactionTx(ctx, tx, p.txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", p.txn.TransactionID))
		return nil, err
	}
	s.logPosted(ctx, p.txn)
	return &p.txn, nil
}

// preparePosting runs validation, lookups and policy checks in order and builds the
// transaction with fresh ids. Nothing is written.
func (s *ledgerService) preparePosting(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string, findAccounts accountLookup) (*posting, error) {
	householdMode := isHouseholdMode(req.Mode)

	splits := toDomainSplits(req.Splits)
	if err := s.validator.ValidateSplits(splits); err != nil {
		return nil, err
	}
	if req.TxnDate.IsZero() {
		return nil, apperrors.NewInvalidTransactionError("txnDate is required")
	}

	currency, err := s.currencies.GetCurrencyByCode(ctx, req.Currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewInvalidTransactionError("Invalid currency: %s", req.Currency)
		}
		s.LogError(ctx, err, "Failed to resolve currency", slog.String("currency", req.Currency))
		return nil, err
	}

	accountIDs := make([]string, 0, len(splits))
	tagIDs := make([]string, 0, len(splits))
	for _, sp := range splits {
		accountIDs = append(accountIDs, sp.AccountID)
		if sp.CategoryTagID != nil {
			tagIDs = append(tagIDs, *sp.CategoryTagID)
		}
	}
	accountIDs = distinct(accountIDs)
	tagIDs = distinct(tagIDs)

	accountMap, err := findAccounts(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for transaction")
		return nil, err
	}
	if missing := missingKeys(accountIDs, accountMap); len(missing) > 0 {
		return nil, apperrors.NewInvalidTransactionError("Accounts not found: [%s]", strings.Join(missing, ", "))
	}
	accounts := make([]domain.Account, 0, len(accountIDs))
	for _, id := range accountIDs {
		accounts = append(accounts, accountMap[id])
	}

	if err := s.validator.ValidateCurrencyConsistency(accounts, currency.Code); err != nil {
		return nil, err
	}

	if err := s.policy.CheckAccountAccess(ctx, accounts, creatorUserID, householdMode, req.HouseholdID); err != nil {
		s.LogDebug(ctx, "Transaction rejected by policy", slog.String("user_id", creatorUserID), slog.String("error", err.Error()))
		return nil, err
	}

	tagMap := map[string]domain.CategoryTag{}
	if len(tagIDs) > 0 {
		tagMap, err = s.tagRepo.FindCategoryTagsByIDs(ctx, tagIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to fetch category tags for transaction")
			return nil, err
		}
		if missing := missingKeys(tagIDs, tagMap); len(missing) > 0 {
			return nil, apperrors.NewInvalidTransactionError("Category tags not found: [%s]", strings.Join(missing, ", "))
		}
		for _, id := range tagIDs {
			if tag := tagMap[id]; tag.OwnerUserID != creatorUserID {
				return nil, apperrors.NewForbiddenError("Category tag '" + tag.Name + "' is not owned by current user")
			}
		}
	}

	now := s.now()
	txn := domain.LedgerTransaction{
		TransactionID: uuid.NewString(),
		CreatedBy:     creatorUserID,
		TxnDate:       dto.NewLocalDate(req.TxnDate.Time).Time,
		Description:   strings.TrimSpace(req.Description),
		CurrencyCode:  currency.Code,
		Splits:        splits,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if householdMode {
		txn.HouseholdID = req.HouseholdID
	}
	for i := range txn.Splits {
		txn.Splits[i].SplitID = uuid.NewString()
		txn.Splits[i].TransactionID = txn.TransactionID
	}

	return &posting{txn: txn, accounts: accountMap, tags: tagMap}, nil
}

func (s *ledgerService) logPosted(ctx context.Context, txn domain.LedgerTransaction) {
	s.LogInfo(ctx, "Transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("user_id", txn.CreatedBy),
		slog.Int("split_count", len(txn.Splits)))
}

// ListTransactions implements portssvc.LedgerReaderSvc
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PagedTransactionsResponse, error) {
	page, size := pagination.Normalize(params.Page, params.Size)

	query := portsrepo.TransactionQuery{
		DateFrom:      params.DateFrom,
		DateTo:        params.DateTo,
		AccountID:     params.AccountID,
		CategoryTagID: params.CategoryID,
		Limit:         size,
		Offset:        pagination.Offset(page, size),
	}

	if isHouseholdMode(params.Mode) {
		if params.HouseholdID == nil || *params.HouseholdID == "" {
			return nil, apperrors.NewInvalidTransactionError("householdId is required for household mode")
		}
		if err := s.AuthorizeHouseholdMember(ctx, *params.HouseholdID, userID); err != nil {
			return nil, err
		}
		shared, err := s.Households.SharedAccountIDs(ctx, *params.HouseholdID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load shared accounts", slog.String("household_id", *params.HouseholdID))
			return nil, err
		}
		if len(shared) == 0 {
			return &dto.PagedTransactionsResponse{Content: []dto.TransactionResponse{}, Page: page, Size: size}, nil
		}
		query.SharedAccountIDs = sortedKeys(shared)
	} else {
		query.CreatedBy = &userID
	}

	txns, total, err := s.ledgerRepo.ListTransactions(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("user_id", userID))
		return nil, err
	}

	var accountIDs, tagIDs, userIDs []string
	for _, txn := range txns {
		userIDs = append(userIDs, txn.CreatedBy)
		for _, sp := range txn.Splits {
			accountIDs = append(accountIDs, sp.AccountID)
			if sp.CategoryTagID != nil {
				tagIDs = append(tagIDs, *sp.CategoryTagID)
			}
		}
	}

	lookups := dto.TransactionLookups{
		Accounts: map[string]domain.Account{},
		Tags:     map[string]domain.CategoryTag{},
		Users:    s.findUsers(ctx, distinct(userIDs)),
	}
	if len(accountIDs) > 0 {
		if lookups.Accounts, err = s.accountRepo.FindAccountsByIDs(ctx, distinct(accountIDs)); err != nil {
			s.LogError(ctx, err, "Failed to resolve accounts for listing")
			return nil, err
		}
	}
	if len(tagIDs) > 0 {
		if lookups.Tags, err = s.tagRepo.FindCategoryTagsByIDs(ctx, distinct(tagIDs)); err != nil {
			s.LogError(ctx, err, "Failed to resolve category tags for listing")
			return nil, err
		}
	}

	content := make([]dto.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		content = append(content, dto.ToTransactionResponse(txn, lookups))
	}

	return &dto.PagedTransactionsResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pagination.TotalPages(total, size),
	}, nil
}

// PublishPosted implements portssvc.LedgerTxPosterSvc. Failures are logged only.
func (s *ledgerService) PublishPosted(ctx context.Context, txn domain.LedgerTransaction) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishTransactionPosted(ctx, domain.NewTransactionPosted(txn, s.now())); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction posted event", slog.String("transaction_id", txn.TransactionID))
	}
}

// findUsers resolves creator details; lookup failures degrade to id-only creators.
func (s *ledgerService) findUsers(ctx context.Context, userIDs []string) map[string]domain.User {
	if s.userRepo == nil || len(userIDs) == 0 {
		return map[string]domain.User{}
	}
	users, err := s.userRepo.FindUsersByIDs(ctx, userIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve transaction creators")
		return map[string]domain.User{}
	}
	return users
}

func toDomainSplits(reqs []dto.CreateSplitRequest) []domain.LedgerSplit {
	splits := make([]domain.LedgerSplit, len(reqs))
	for i, r := range reqs {
		splits[i] = domain.LedgerSplit{
			AccountID:     r.AccountID,
			Side:          domain.SplitSide(r.Side),
			AmountMinor:   r.AmountMinor,
			CategoryTagID: r.CategoryTagID,
			Memo:          trimToNil(r.Memo),
		}
	}
	return splits
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// distinct returns ids without duplicates, keeping first-seen order.
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingKeys[V any](ids []string, found map[string]V) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
