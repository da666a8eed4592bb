package domain

import "time"

// AccountBalance is the normal-balance-aware balance of one account as of a date.
type AccountBalance struct {
	Account      Account
	BalanceMinor int64
	AsOf         time.Time
}

// SplitTotals holds raw debit and credit sums for one account.
type SplitTotals struct {
	AccountID   string
	DebitMinor  int64
	CreditMinor int64
}

// MonthlyExpenseRow is one (expense account, category tag, currency) group of a monthly report.
type MonthlyExpenseRow struct {
	ExpenseAccountID   string
	ExpenseAccountName string
	CategoryTagID      *string
	CategoryTagName    *string
	CurrencyCode       string
	NetMinor           int64
}

// DailyTotals holds raw debit and credit sums for one account on one day.
type DailyTotals struct {
	Date        time.Time
	DebitMinor  int64
	CreditMinor int64
}

// BalancePoint is one day of a cumulative balance timeseries.
type BalancePoint struct {
	Date         time.Time
	BalanceMinor int64
}

// BalanceTimeseries is a gap-filled daily balance series for one account.
type BalanceTimeseries struct {
	Account Account
	Points  []BalancePoint
}
