package models

import "time"

// Account is the persisted row of the accounts table.
type Account struct {
	AccountID    string    `db:"account_id"`
	OwnerUserID  string    `db:"owner_user_id"`
	Name         string    `db:"name"`
	AccountType  string    `db:"account_type"`
	CurrencyCode string    `db:"currency_code"`
	CreatedAt    time.Time `db:"created_at"`
}
