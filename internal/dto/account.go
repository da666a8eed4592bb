package dto

import (
	"time"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name                string     `json:"name" binding:"required"`
	Type                string     `json:"type" binding:"required"`
	Currency            string     `json:"currency" binding:"required"`
	OpeningBalanceMinor int64      `json:"openingBalanceMinor"`
	OpeningBalanceDate  *LocalDate `json:"openingBalanceDate"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"id"`
	OwnerUserID string             `json:"ownerUserId"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"type"`
	Currency    string             `json:"currency"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		OwnerUserID: acc.OwnerUserID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Currency:    acc.CurrencyCode,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of accounts.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		out[i] = ToAccountResponse(acc)
	}
	return out
}
