package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/dto"
)

// LedgerWriterSvc defines write operations for the ledger
type LedgerWriterSvc interface {
	// CreateTransaction validates, authorizes and atomically posts a transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*dto.TransactionResponse, error)
}

// LedgerTxPosterSvc posts transactions inside a caller-owned database transaction
type LedgerTxPosterSvc interface {
	// CreateTransactionTx runs the same checks as CreateTransaction and writes within tx.
	// Nothing is published; call PublishPosted once tx has committed.
	CreateTransactionTx(ctx context.Context, tx pgx.Tx, req dto.CreateTransactionRequest, creatorUserID string) (*domain.LedgerTransaction, error)

	// PublishPosted emits the TransactionPosted event for a committed transaction.
	PublishPosted(ctx context.Context, txn domain.LedgerTransaction)
}

// LedgerReaderSvc defines read operations for the ledger
type LedgerReaderSvc interface {
	// ListTransactions returns a filtered page of transactions visible to the user.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.PagedTransactionsResponse, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerTxPosterSvc
	LedgerReaderSvc
}
