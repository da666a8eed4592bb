package models

import (
	"database/sql"
	"time"
)

// LedgerTransaction is the persisted header row of a posted transaction.
type LedgerTransaction struct {
	TransactionID string         `db:"transaction_id"`
	CreatedBy     string         `db:"created_by_user_id"`
	HouseholdID   sql.NullString `db:"household_id"`
	TxnDate       time.Time      `db:"txn_date"`
	Description   string         `db:"description"`
	CurrencyCode  string         `db:"currency_code"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// LedgerSplit is one persisted leg of a transaction. AmountMinor is always positive.
type LedgerSplit struct {
	SplitID       string         `db:"split_id"`
	TransactionID string         `db:"transaction_id"`
	Position      int            `db:"position"`
	AccountID     string         `db:"account_id"`
	Side          string         `db:"side"`
	AmountMinor   int64          `db:"amount_minor"`
	CategoryTagID sql.NullString `db:"category_tag_id"`
	Memo          sql.NullString `db:"memo"`
}

// CategoryTag is the persisted row of the category_tags table.
type CategoryTag struct {
	CategoryTagID string         `db:"category_tag_id"`
	OwnerUserID   string         `db:"owner_user_id"`
	Name          string         `db:"name"`
	Color         sql.NullString `db:"color"`
	CreatedAt     time.Time      `db:"created_at"`
}
