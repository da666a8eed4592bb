package domain

import (
	"strings"
	"time"
)

// SplitSide indicates whether a split debits or credits its account.
type SplitSide string

const (
	Debit  SplitSide = "DEBIT"
	Credit SplitSide = "CREDIT"
)

// IsValid reports whether s is DEBIT or CREDIT.
func (s SplitSide) IsValid() bool {
	return s == Debit || s == Credit
}

// Opposite returns the other side.
func (s SplitSide) Opposite() SplitSide {
	if s == Debit {
		return Credit
	}
	return Debit
}

// TxnMode selects whether a posting or query is scoped to the caller or to a household.
type TxnMode string

const (
	ModeIndividual TxnMode = "INDIVIDUAL"
	ModeHousehold  TxnMode = "HOUSEHOLD"
)

// ParseTxnMode parses a case-insensitive mode. An empty string is INDIVIDUAL.
func ParseTxnMode(s string) (TxnMode, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ModeIndividual, true
	}
	m := TxnMode(s)
	return m, m == ModeIndividual || m == ModeHousehold
}

// TxnKind is the presentation classification of a transaction, derived at read time.
type TxnKind string

const (
	KindTransfer TxnKind = "TRANSFER"
	KindExpense  TxnKind = "EXPENSE"
	KindIncome   TxnKind = "INCOME"
)

// LedgerTransaction is a balanced set of splits posted together.
type LedgerTransaction struct {
	TransactionID string        `json:"transactionId"`
	CreatedBy     string        `json:"createdBy"`
	HouseholdID   *string       `json:"householdId,omitempty"`
	TxnDate       time.Time     `json:"txnDate"`
	Description   string        `json:"description"`
	CurrencyCode  string        `json:"currencyCode"`
	Splits        []LedgerSplit `json:"splits"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// LedgerSplit is one leg of a LedgerTransaction. AmountMinor is always positive.
type LedgerSplit struct {
	SplitID       string    `json:"splitId"`
	TransactionID string    `json:"transactionId"`
	AccountID     string    `json:"accountId"`
	Side          SplitSide `json:"side"`
	AmountMinor   int64     `json:"amountMinor"`
	CategoryTagID *string   `json:"categoryTagId,omitempty"`
	Memo          *string   `json:"memo,omitempty"`
}

// DeriveTxnKind classifies a transaction from the types of the accounts its splits touch.
func DeriveTxnKind(types []AccountType) TxnKind {
	allTransfer := true
	hasExpense, hasIncome := false, false
	for _, t := range types {
		if !t.IsTransferType() {
			allTransfer = false
		}
		switch t {
		case Expense:
			hasExpense = true
		case Income:
			hasIncome = true
		}
	}
	switch {
	case allTransfer:
		return KindTransfer
	case hasExpense:
		return KindExpense
	case hasIncome:
		return KindIncome
	default:
		return KindTransfer
	}
}

// EffectMinor returns the signed effect of a split on its account's balance: positive when the
// side matches the account's normal side.
func EffectMinor(side SplitSide, accountType AccountType, amountMinor int64) int64 {
	normal := Credit
	if accountType.IsDebitNormal() {
		normal = Debit
	}
	if side == normal {
		return amountMinor
	}
	return -amountMinor
}

// SignedBalance applies the normal-balance convention to raw debit and credit totals.
func SignedBalance(accountType AccountType, debitMinor, creditMinor int64) int64 {
	if accountType.IsDebitNormal() {
		return debitMinor - creditMinor
	}
	return creditMinor - debitMinor
}

// CategoryTag is an owner-private label attached to splits.
type CategoryTag struct {
	CategoryTagID string    `json:"categoryTagId"`
	OwnerUserID   string    `json:"ownerUserId"`
	Name          string    `json:"name"`
	Color         *string   `json:"color,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
