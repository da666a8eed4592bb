package domain

import "time"

// TransactionPosted is emitted after a ledger transaction commits.
type TransactionPosted struct {
	TransactionID string                   `json:"transactionId"`
	CreatedBy     string                   `json:"createdBy"`
	HouseholdID   *string                  `json:"householdId,omitempty"`
	TxnDate       string                   `json:"txnDate"`
	CurrencyCode  string                   `json:"currency"`
	Splits        []TransactionPostedSplit `json:"splits"`
	OccurredAt    time.Time                `json:"occurredAt"`
}

// TransactionPostedSplit is one leg of a TransactionPosted event.
type TransactionPostedSplit struct {
	AccountID   string    `json:"accountId"`
	Side        SplitSide `json:"side"`
	AmountMinor int64     `json:"amountMinor"`
}

// NewTransactionPosted builds the event for a committed transaction.
func NewTransactionPosted(txn LedgerTransaction, occurredAt time.Time) TransactionPosted {
	splits := make([]TransactionPostedSplit, len(txn.Splits))
	for i, s := range txn.Splits {
		splits[i] = TransactionPostedSplit{AccountID: s.AccountID, Side: s.Side, AmountMinor: s.AmountMinor}
	}
	return TransactionPosted{
		TransactionID: txn.TransactionID,
		CreatedBy:     txn.CreatedBy,
		HouseholdID:   txn.HouseholdID,
		TxnDate:       txn.TxnDate.Format("2006-01-02"),
		CurrencyCode:  txn.CurrencyCode,
		Splits:        splits,
		OccurredAt:    occurredAt,
	}
}
