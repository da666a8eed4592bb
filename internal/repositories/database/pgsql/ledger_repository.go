package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
	"github.com/devdecrux/pocketr_api/internal/models"
	"github.com/devdecrux/pocketr_api/internal/utils/mapping"
)

const txnColumns = `t.transaction_id, t.created_by_user_id, t.household_id, t.txn_date, t.description, t.currency_code, t.created_at, t.updated_at`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SaveTransaction persists the header and all splits atomically.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.LedgerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.SaveTransactionTx(ctx, tx, txn); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveTransactionTx inserts the header and queues every split insert in a single batch.
func (r *PgxLedgerRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.LedgerTransaction) error {
	h := mapping.ToModelLedgerTransaction(txn)
	headerQuery := `
		INSERT INTO ledger_transactions (transaction_id, created_by_user_id, household_id, txn_date, description, currency_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, headerQuery,
		h.TransactionID, h.CreatedBy, h.HouseholdID, h.TxnDate, h.Description, h.CurrencyCode, h.CreatedAt, h.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", h.TransactionID, err)
	}

	splitQuery := `
		INSERT INTO ledger_splits (split_id, transaction_id, position, account_id, side, amount_minor, category_tag_id, memo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	batch := &pgx.Batch{}
	for i, s := range txn.Splits {
		m := mapping.ToModelLedgerSplit(s)
		m.Position = i
		batch.Queue(splitQuery, m.SplitID, h.TransactionID, m.Position, m.AccountID, m.Side, m.AmountMinor, m.CategoryTagID, m.Memo)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert splits for transaction %s: %w", h.TransactionID, err)
	}
	return nil
}

// ListTransactions returns one page of matching transactions with their splits and the total match count.
func (r *PgxLedgerRepository) ListTransactions(ctx context.Context, q portsrepo.TransactionQuery) ([]domain.LedgerTransaction, int64, error) {
	filter := NewTxnFilter(q)
	where, args := filter.Build()

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_transactions t `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	if total == 0 {
		return []domain.LedgerTransaction{}, 0, nil
	}

	n := filter.NextPlaceholder()
	pageQuery := fmt.Sprintf(`
		SELECT %s
		FROM ledger_transactions t
		%s
		ORDER BY t.txn_date DESC, t.created_at DESC, t.transaction_id DESC
		LIMIT $%d OFFSET $%d;
	`, txnColumns, where, n, n+1)
	rows, err := r.Pool.Query(ctx, pageQuery, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerTransaction])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan transactions: %w", err)
	}
	if len(headers) == 0 {
		return []domain.LedgerTransaction{}, total, nil
	}

	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.TransactionID
	}
	splitRows, err := r.Pool.Query(ctx, `
		SELECT split_id, transaction_id, position, account_id, side, amount_minor, category_tag_id, memo
		FROM ledger_splits
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, position;
	`, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query splits: %w", err)
	}
	splits, err := pgx.CollectRows(splitRows, pgx.RowToStructByName[models.LedgerSplit])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan splits: %w", err)
	}
	byTxn := make(map[string][]models.LedgerSplit, len(headers))
	for _, s := range splits {
		byTxn[s.TransactionID] = append(byTxn[s.TransactionID], s)
	}

	out := make([]domain.LedgerTransaction, len(headers))
	for i, h := range headers {
		out[i] = mapping.ToDomainLedgerTransaction(h, byTxn[h.TransactionID])
	}
	return out, total, nil
}

// SumSplitsByAccounts aggregates raw debit and credit totals per account for splits dated on or before asOf.
func (r *PgxLedgerRepository) SumSplitsByAccounts(ctx context.Context, accountIDs []string, asOf time.Time) (map[string]domain.SplitTotals, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.SplitTotals{}, nil
	}
	query := `
		SELECT
			s.account_id::text,
			COALESCE(SUM(CASE WHEN s.side = 'DEBIT' THEN s.amount_minor ELSE 0 END), 0)::BIGINT AS debit_minor,
			COALESCE(SUM(CASE WHEN s.side = 'CREDIT' THEN s.amount_minor ELSE 0 END), 0)::BIGINT AS credit_minor
		FROM ledger_splits s
		JOIN ledger_transactions t ON t.transaction_id = s.transaction_id
		WHERE s.account_id = ANY($1) AND t.txn_date <= $2
		GROUP BY s.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate splits: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.SplitTotals, len(accountIDs))
	for rows.Next() {
		var t domain.SplitTotals
		if err := rows.Scan(&t.AccountID, &t.DebitMinor, &t.CreditMinor); err != nil {
			return nil, fmt.Errorf("failed to scan split totals: %w", err)
		}
		out[t.AccountID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating split totals: %w", err)
	}
	return out, nil
}
