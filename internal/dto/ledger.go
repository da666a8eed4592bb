package dto

import (
	"time"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// CreateSplitRequest is one leg of a proposed transaction.
type CreateSplitRequest struct {
	AccountID     string  `json:"accountId" binding:"required,uuid"`
	Side          string  `json:"side"`
	AmountMinor   int64   `json:"amountMinor"`
	CategoryTagID *string `json:"categoryTagId" binding:"omitempty,uuid"`
	Memo          *string `json:"memo"`
}

// CreateTransactionRequest defines the data needed to post a transaction.
// Split count, side and balance rules are enforced by the ledger service so that
// their error messages stay stable.
type CreateTransactionRequest struct {
	Mode        string               `json:"mode"`
	HouseholdID *string              `json:"householdId" binding:"omitempty,uuid"`
	TxnDate     LocalDate            `json:"txnDate"`
	Currency    string               `json:"currency" binding:"required"`
	Description string               `json:"description"`
	Splits      []CreateSplitRequest `json:"splits" binding:"dive"`
}

// ListTransactionsParams defines the query parameters for listing transactions.
type ListTransactionsParams struct {
	Mode        string     `form:"mode"`
	HouseholdID *string    `form:"householdId" binding:"omitempty,uuid"`
	DateFrom    *time.Time `form:"dateFrom" time_format:"2006-01-02" time_utc:"1"`
	DateTo      *time.Time `form:"dateTo" time_format:"2006-01-02" time_utc:"1"`
	AccountID   *string    `form:"accountId" binding:"omitempty,uuid"`
	CategoryID  *string    `form:"categoryId" binding:"omitempty,uuid"`
	Page        int        `form:"page" binding:"min=0,max=10000000"`
	Size        int        `form:"size" binding:"min=0,max=100"`
}

// CreatorResponse identifies the user who posted a transaction.
type CreatorResponse struct {
	UserID    string  `json:"userId"`
	Email     string  `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// CategoryTagResponse is the tag attached to a split.
type CategoryTagResponse struct {
	CategoryTagID string  `json:"id"`
	Name          string  `json:"name"`
	Color         *string `json:"color,omitempty"`
}

// SplitResponse is one leg of a posted transaction, with its signed effect.
type SplitResponse struct {
	SplitID     string               `json:"id"`
	AccountID   string               `json:"accountId"`
	AccountName string               `json:"accountName"`
	AccountType domain.AccountType   `json:"accountType"`
	Side        domain.SplitSide     `json:"side"`
	AmountMinor int64                `json:"amountMinor"`
	EffectMinor int64                `json:"effectMinor"`
	CategoryTag *CategoryTagResponse `json:"categoryTag,omitempty"`
	Memo        *string              `json:"memo,omitempty"`
}

// TransactionResponse is a posted transaction with derived presentation fields.
type TransactionResponse struct {
	TransactionID string          `json:"id"`
	TxnDate       LocalDate       `json:"txnDate"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	HouseholdID   *string         `json:"householdId,omitempty"`
	TxnKind       domain.TxnKind  `json:"txnKind"`
	CreatedBy     CreatorResponse `json:"createdBy"`
	Splits        []SplitResponse `json:"splits"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// PagedTransactionsResponse is one page of transactions.
type PagedTransactionsResponse struct {
	Content       []TransactionResponse `json:"content"`
	Page          int                   `json:"page"`
	Size          int                   `json:"size"`
	TotalElements int64                 `json:"totalElements"`
	TotalPages    int                   `json:"totalPages"`
}

// TransactionLookups carries the resolved references needed to render transactions.
type TransactionLookups struct {
	Accounts map[string]domain.Account
	Tags     map[string]domain.CategoryTag
	Users    map[string]domain.User
}

// ToTransactionResponse renders a transaction, deriving txnKind and per-split effects.
func ToTransactionResponse(txn domain.LedgerTransaction, lookups TransactionLookups) TransactionResponse {
	splits := make([]SplitResponse, 0, len(txn.Splits))
	types := make([]domain.AccountType, 0, len(txn.Splits))
	for _, s := range txn.Splits {
		acc := lookups.Accounts[s.AccountID]
		types = append(types, acc.AccountType)

		var tag *CategoryTagResponse
		if s.CategoryTagID != nil {
			t := lookups.Tags[*s.CategoryTagID]
			tag = &CategoryTagResponse{CategoryTagID: *s.CategoryTagID, Name: t.Name, Color: t.Color}
		}
		splits = append(splits, SplitResponse{
			SplitID:     s.SplitID,
			AccountID:   s.AccountID,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Side:        s.Side,
			AmountMinor: s.AmountMinor,
			EffectMinor: domain.EffectMinor(s.Side, acc.AccountType, s.AmountMinor),
			CategoryTag: tag,
			Memo:        s.Memo,
		})
	}

	creator := CreatorResponse{UserID: txn.CreatedBy}
	if u, ok := lookups.Users[txn.CreatedBy]; ok {
		creator.Email = u.Email
		creator.FirstName = u.FirstName
		creator.LastName = u.LastName
	}

	return TransactionResponse{
		TransactionID: txn.TransactionID,
		TxnDate:       NewLocalDate(txn.TxnDate),
		Currency:      txn.CurrencyCode,
		Description:   txn.Description,
		HouseholdID:   txn.HouseholdID,
		TxnKind:       domain.DeriveTxnKind(types),
		CreatedBy:     creator,
		Splits:        splits,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}
}
