package domain

import (
	"strings"
	"time"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
	Equity    AccountType = "EQUITY"
)

// OpeningEquityAccountName is the name of the per-(owner, currency) EQUITY account that
// receives the offsetting leg of opening balances.
const OpeningEquityAccountName = "Opening Equity"

// debitNormal lists the account types whose balance grows on the debit side.
var debitNormal = map[AccountType]bool{
	Asset:   true,
	Expense: true,
}

// transferTypes lists the account types that make a transaction a plain transfer
// when every split touches one of them.
var transferTypes = map[AccountType]bool{
	Asset:     true,
	Liability: true,
	Equity:    true,
}

// AllAccountTypes returns the account types in declaration order.
func AllAccountTypes() []AccountType {
	return []AccountType{Asset, Liability, Income, Expense, Equity}
}

// ParseAccountType parses a case-insensitive account type name.
func ParseAccountType(s string) (AccountType, bool) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Income, Expense, Equity:
		return true
	}
	return false
}

// IsDebitNormal reports whether balances of this type are ΣDEBIT − ΣCREDIT.
func (t AccountType) IsDebitNormal() bool {
	return debitNormal[t]
}

// IsTransferType reports whether the type counts toward a TRANSFER classification.
func (t AccountType) IsTransferType() bool {
	return transferTypes[t]
}

// Account represents a financial account owned by a single user.
type Account struct {
	AccountID    string      `json:"accountId"`
	OwnerUserID  string      `json:"ownerUserId"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// IsOwnedBy reports whether userID owns the account.
func (a Account) IsOwnedBy(userID string) bool {
	return a.OwnerUserID == userID
}
