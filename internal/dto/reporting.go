package dto

import (
	"time"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/utils"
)

// BalanceResponse is the balance of one account as of a date.
type BalanceResponse struct {
	AccountID    string             `json:"accountId"`
	AccountName  string             `json:"accountName"`
	AccountType  domain.AccountType `json:"accountType"`
	Currency     string             `json:"currency"`
	BalanceMinor int64              `json:"balanceMinor"`
	Amount       string             `json:"amount"`
	Display      string             `json:"display"`
	AsOf         LocalDate          `json:"asOf"`
}

// AccountBalanceSummaryResponse is one row of the all-accounts balance report.
type AccountBalanceSummaryResponse struct {
	AccountID    string             `json:"accountId"`
	AccountName  string             `json:"accountName"`
	AccountType  domain.AccountType `json:"accountType"`
	Currency     string             `json:"currency"`
	BalanceMinor int64              `json:"balanceMinor"`
	Amount       string             `json:"amount"`
	Display      string             `json:"display"`
}

// MonthlyExpenseResponse is one (expense account, category) row of the monthly report.
type MonthlyExpenseResponse struct {
	ExpenseAccountID   string  `json:"expenseAccountId"`
	ExpenseAccountName string  `json:"expenseAccountName"`
	CategoryTagID      *string `json:"categoryTagId"`
	CategoryTagName    *string `json:"categoryTagName"`
	Currency           string  `json:"currency"`
	NetMinor           int64   `json:"netMinor"`
	Amount             string  `json:"amount"`
	Display            string  `json:"display"`
}

// BalancePointResponse is one day of a balance timeseries.
type BalancePointResponse struct {
	Date         LocalDate `json:"date"`
	BalanceMinor int64     `json:"balanceMinor"`
}

// BalanceTimeseriesResponse is a gap-filled daily balance series for one account.
type BalanceTimeseriesResponse struct {
	AccountID   string                 `json:"accountId"`
	AccountName string                 `json:"accountName"`
	AccountType domain.AccountType     `json:"accountType"`
	Currency    string                 `json:"currency"`
	Points      []BalancePointResponse `json:"points"`
}

// MonthlyExpensesParams are the query parameters of the monthly report.
type MonthlyExpensesParams struct {
	Mode        string  `form:"mode"`
	Period      string  `form:"period" binding:"required,yearmonth"`
	HouseholdID *string `form:"householdId" binding:"omitempty,uuid"`
}

// ToBalanceResponse converts a domain balance using the account currency's precision.
func ToBalanceResponse(b domain.AccountBalance, currency domain.Currency) BalanceResponse {
	return BalanceResponse{
		AccountID:    b.Account.AccountID,
		AccountName:  b.Account.Name,
		AccountType:  b.Account.AccountType,
		Currency:     b.Account.CurrencyCode,
		BalanceMinor: b.BalanceMinor,
		Amount:       utils.FormatMinorUnits(b.BalanceMinor, currency),
		Display:      utils.DisplayMinorUnits(b.BalanceMinor, currency),
		AsOf:         NewLocalDate(b.AsOf),
	}
}

// ToAccountBalanceSummaryResponse converts a domain balance into a report row.
func ToAccountBalanceSummaryResponse(b domain.AccountBalance, currency domain.Currency) AccountBalanceSummaryResponse {
	return AccountBalanceSummaryResponse{
		AccountID:    b.Account.AccountID,
		AccountName:  b.Account.Name,
		AccountType:  b.Account.AccountType,
		Currency:     b.Account.CurrencyCode,
		BalanceMinor: b.BalanceMinor,
		Amount:       utils.FormatMinorUnits(b.BalanceMinor, currency),
		Display:      utils.DisplayMinorUnits(b.BalanceMinor, currency),
	}
}

// ToMonthlyExpenseResponse converts an aggregated expense row.
func ToMonthlyExpenseResponse(row domain.MonthlyExpenseRow, currency domain.Currency) MonthlyExpenseResponse {
	return MonthlyExpenseResponse{
		ExpenseAccountID:   row.ExpenseAccountID,
		ExpenseAccountName: row.ExpenseAccountName,
		CategoryTagID:      row.CategoryTagID,
		CategoryTagName:    row.CategoryTagName,
		Currency:           row.CurrencyCode,
		NetMinor:           row.NetMinor,
		Amount:             utils.FormatMinorUnits(row.NetMinor, currency),
		Display:            utils.DisplayMinorUnits(row.NetMinor, currency),
	}
}

// ToBalanceTimeseriesResponse converts a computed timeseries.
func ToBalanceTimeseriesResponse(ts domain.BalanceTimeseries) BalanceTimeseriesResponse {
	points := make([]BalancePointResponse, len(ts.Points))
	for i, p := range ts.Points {
		points[i] = BalancePointResponse{Date: NewLocalDate(p.Date), BalanceMinor: p.BalanceMinor}
	}
	return BalanceTimeseriesResponse{
		AccountID:   ts.Account.AccountID,
		AccountName: ts.Account.Name,
		AccountType: ts.Account.AccountType,
		Currency:    ts.Account.CurrencyCode,
		Points:      points,
	}
}

// BalanceTimeseriesParams are the query parameters of the balance timeseries report.
type BalanceTimeseriesParams struct {
	AccountID string    `form:"accountId" binding:"required,uuid"`
	DateFrom  time.Time `form:"dateFrom" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	DateTo    time.Time `form:"dateTo" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}
