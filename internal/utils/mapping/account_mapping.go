package mapping

import (
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		OwnerUserID:  d.OwnerUserID,
		Name:         d.Name,
		AccountType:  string(d.AccountType),
		CurrencyCode: d.CurrencyCode,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		OwnerUserID:  m.OwnerUserID,
		Name:         m.Name,
		AccountType:  domain.AccountType(m.AccountType),
		CurrencyCode: m.CurrencyCode,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainAccountMap converts model Accounts into domain Accounts keyed by id
func ToDomainAccountMap(ms []models.Account) map[string]domain.Account {
	out := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		out[m.AccountID] = ToDomainAccount(m)
	}
	return out
}
