package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// monthlyExpenseSelect groups EXPENSE splits by (account, tag, currency). The scope predicate
// is appended by the caller as $1; the period bounds are $2 and $3.
const monthlyExpenseSelect = `
	SELECT
		a.account_id::text,
		a.name,
		s.category_tag_id::text,
		c.name,
		t.currency_code,
		COALESCE(SUM(CASE WHEN s.side = 'DEBIT' THEN s.amount_minor ELSE -s.amount_minor END), 0)::BIGINT AS net_minor
	FROM ledger_splits s
	JOIN ledger_transactions t ON t.transaction_id = s.transaction_id
	JOIN accounts a ON a.account_id = s.account_id
	LEFT JOIN category_tags c ON c.category_tag_id = s.category_tag_id
	WHERE a.account_type = 'EXPENSE'
		AND %s
		AND t.txn_date >= $2 AND t.txn_date < $3
	GROUP BY a.account_id, a.name, s.category_tag_id, c.name, t.currency_code
	ORDER BY a.name, c.name NULLS LAST, a.account_id;
`

// MonthlyExpensesByOwner aggregates expense splits on the owner's accounts dated in [from, to).
func (r *reportingRepository) MonthlyExpensesByOwner(ctx context.Context, ownerUserID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error) {
	return r.monthlyExpenses(ctx, "a.owner_user_id = $1", ownerUserID, from, to)
}

// MonthlyExpensesByHousehold aggregates expense splits of household transactions dated in [from, to).
func (r *reportingRepository) MonthlyExpensesByHousehold(ctx context.Context, householdID string, from, to time.Time) ([]domain.MonthlyExpenseRow, error) {
	return r.monthlyExpenses(ctx, "t.household_id = $1", householdID, from, to)
}

func (r *reportingRepository) monthlyExpenses(ctx context.Context, scope string, scopeArg string, from, to time.Time) ([]domain.MonthlyExpenseRow, error) {
	rows, err := r.Pool.Query(ctx, fmt.Sprintf(monthlyExpenseSelect, scope), scopeArg, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly expenses: %w", err)
	}
	defer rows.Close()

	result := []domain.MonthlyExpenseRow{}
	for rows.Next() {
		var row domain.MonthlyExpenseRow
		if err := rows.Scan(
			&row.ExpenseAccountID,
			&row.ExpenseAccountName,
			&row.CategoryTagID,
			&row.CategoryTagName,
			&row.CurrencyCode,
			&row.NetMinor,
		); err != nil {
			return nil, fmt.Errorf("error scanning monthly expense row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly expense rows: %w", err)
	}
	return result, nil
}

// DailySplitTotals returns raw debit and credit totals per day for one account over [from, to].
func (r *reportingRepository) DailySplitTotals(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyTotals, error) {
	query := `
		SELECT
			t.txn_date,
			COALESCE(SUM(CASE WHEN s.side = 'DEBIT' THEN s.amount_minor ELSE 0 END), 0)::BIGINT,
			COALESCE(SUM(CASE WHEN s.side = 'CREDIT' THEN s.amount_minor ELSE 0 END), 0)::BIGINT
		FROM ledger_splits s
		JOIN ledger_transactions t ON t.transaction_id = s.transaction_id
		WHERE s.account_id = $1 AND t.txn_date >= $2 AND t.txn_date <= $3
		GROUP BY t.txn_date
		ORDER BY t.txn_date;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily split totals: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyTotals{}
	for rows.Next() {
		var d domain.DailyTotals
		if err := rows.Scan(&d.Date, &d.DebitMinor, &d.CreditMinor); err != nil {
			return nil, fmt.Errorf("error scanning daily split totals: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily split totals: %w", err)
	}
	return result, nil
}
