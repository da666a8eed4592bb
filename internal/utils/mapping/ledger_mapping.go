package mapping

import (
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/models"
)

// ToModelLedgerTransaction converts a domain transaction header to its model row
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID: d.TransactionID,
		CreatedBy:     d.CreatedBy,
		HouseholdID:   ToNullString(d.HouseholdID),
		TxnDate:       d.TxnDate,
		Description:   d.Description,
		CurrencyCode:  d.CurrencyCode,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDomainLedgerTransaction converts a model header plus its split rows to a domain transaction
func ToDomainLedgerTransaction(m models.LedgerTransaction, splits []models.LedgerSplit) domain.LedgerTransaction {
	out := domain.LedgerTransaction{
		TransactionID: m.TransactionID,
		CreatedBy:     m.CreatedBy,
		HouseholdID:   FromNullString(m.HouseholdID),
		TxnDate:       m.TxnDate,
		Description:   m.Description,
		CurrencyCode:  m.CurrencyCode,
		Splits:        make([]domain.LedgerSplit, len(splits)),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	for i, s := range splits {
		out.Splits[i] = ToDomainLedgerSplit(s)
	}
	return out
}

// ToModelLedgerSplit converts a domain split to its model row
func ToModelLedgerSplit(d domain.LedgerSplit) models.LedgerSplit {
	return models.LedgerSplit{
		SplitID:       d.SplitID,
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Side:          string(d.Side),
		AmountMinor:   d.AmountMinor,
		CategoryTagID: ToNullString(d.CategoryTagID),
		Memo:          ToNullString(d.Memo),
	}
}

// ToDomainLedgerSplit converts a model split row to a domain split
func ToDomainLedgerSplit(m models.LedgerSplit) domain.LedgerSplit {
	return domain.LedgerSplit{
		SplitID:       m.SplitID,
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Side:          domain.SplitSide(m.Side),
		AmountMinor:   m.AmountMinor,
		CategoryTagID: FromNullString(m.CategoryTagID),
		Memo:          FromNullString(m.Memo),
	}
}

// ToDomainCategoryTag converts a model CategoryTag to a domain CategoryTag
func ToDomainCategoryTag(m models.CategoryTag) domain.CategoryTag {
	return domain.CategoryTag{
		CategoryTagID: m.CategoryTagID,
		OwnerUserID:   m.OwnerUserID,
		Name:          m.Name,
		Color:         FromNullString(m.Color),
		CreatedAt:     m.CreatedAt,
	}
}
