package pgsql

import (
	"fmt"
	"strings"
	"time"

	portsrepo "github.com/devdecrux/pocketr_api/internal/core/ports/repositories"
)

// TxnFilter accumulates AND-ed predicates over ledger_transactions (aliased t) and
// compiles them once into a WHERE clause with positional arguments.
type TxnFilter struct {
	clauses []string
	args    []any
}

// NewTxnFilter builds a filter from a transaction query. Nil and empty fields add no predicate.
func NewTxnFilter(q portsrepo.TransactionQuery) *TxnFilter {
	f := &TxnFilter{}
	if q.CreatedBy != nil {
		f.CreatedBy(*q.CreatedBy)
	}
	if len(q.SharedAccountIDs) > 0 {
		f.TouchesAnyAccount(q.SharedAccountIDs)
	}
	if q.DateFrom != nil {
		f.DateFrom(*q.DateFrom)
	}
	if q.DateTo != nil {
		f.DateTo(*q.DateTo)
	}
	if q.AccountID != nil {
		f.TouchesAccount(*q.AccountID)
	}
	if q.CategoryTagID != nil {
		f.TaggedWith(*q.CategoryTagID)
	}
	return f
}

// where appends a predicate; format receives the placeholder index of arg.
func (f *TxnFilter) where(format string, arg any) *TxnFilter {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, fmt.Sprintf(format, len(f.args)))
	return f
}

func (f *TxnFilter) CreatedBy(userID string) *TxnFilter {
	return f.where("t.created_by_user_id = $%d", userID)
}

// TouchesAnyAccount keeps transactions with at least one split on any of accountIDs.
func (f *TxnFilter) TouchesAnyAccount(accountIDs []string) *TxnFilter {
	return f.where(`EXISTS (SELECT 1 FROM ledger_splits s WHERE s.transaction_id = t.transaction_id AND s.account_id = ANY($%d))`, accountIDs)
}

func (f *TxnFilter) TouchesAccount(accountID string) *TxnFilter {
	return f.where(`EXISTS (SELECT 1 FROM ledger_splits s WHERE s.transaction_id = t.transaction_id AND s.account_id = $%d)`, accountID)
}

func (f *TxnFilter) TaggedWith(categoryTagID string) *TxnFilter {
	return f.where(`EXISTS (SELECT 1 FROM ledger_splits s WHERE s.transaction_id = t.transaction_id AND s.category_tag_id = $%d)`, categoryTagID)
}

func (f *TxnFilter) DateFrom(d time.Time) *TxnFilter {
	return f.where("t.txn_date >= $%d", d)
}

func (f *TxnFilter) DateTo(d time.Time) *TxnFilter {
	return f.where("t.txn_date <= $%d", d)
}

// Build returns the WHERE clause (empty when there are no predicates) and its arguments.
func (f *TxnFilter) Build() (string, []any) {
	if len(f.clauses) == 0 {
		return "", nil
	}
	args := make([]any, len(f.args))
	copy(args, f.args)
	return "WHERE " + strings.Join(f.clauses, " AND "), args
}

// NextPlaceholder returns the index the next appended argument would take.
func (f *TxnFilter) NextPlaceholder() int {
	return len(f.args) + 1
}
