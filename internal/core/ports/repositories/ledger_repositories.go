package repositories

import (
	"context"
	"time"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionQuery describes a filtered, paginated transaction listing.
// Nil pointers and empty slices mean "no constraint".
type TransactionQuery struct {
	CreatedBy        *string
	SharedAccountIDs []string // any split must touch one of these
	DateFrom         *time.Time
	DateTo           *time.Time
	AccountID        *string
	CategoryTagID    *string
	Limit            int
	Offset           int
}

// LedgerReader defines read operations for posted transactions
type LedgerReader interface {
	// ListTransactions returns one page of transactions with their splits, sorted by
	// txn date then creation time (both descending), and the total number of matches.
	ListTransactions(ctx context.Context, query TransactionQuery) ([]domain.LedgerTransaction, int64, error)

	// SumSplitsByAccounts returns raw debit and credit totals per account for splits dated on or before asOf.
	// Accounts without splits are absent from the map.
	SumSplitsByAccounts(ctx context.Context, accountIDs []string, asOf time.Time) (map[string]domain.SplitTotals, error)
}

// LedgerWriter defines write operations for posted transactions
type LedgerWriter interface {
	// SaveTransaction persists the header and all splits in one database transaction.
	SaveTransaction(ctx context.Context, txn domain.LedgerTransaction) error
}

// LedgerTransactionSupport defines ledger operations that run inside a caller-owned transaction
type LedgerTransactionSupport interface {
	// SaveTransactionTx persists the header and all splits within tx.
	SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerTransactionSupport
}
