package mapping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/devdecrux/pocketr_api/internal/models"
	"github.com/devdecrux/pocketr_api/internal/utils/mapping"
)

func TestLedgerSplitMapping_NullableColumns(t *testing.T) {
	memo := "split bill"
	d := domain.LedgerSplit{SplitID: "s1", TransactionID: "t1", AccountID: "a1", Side: domain.Credit, AmountMinor: 990, Memo: &memo}

	m := mapping.ToModelLedgerSplit(d)
	assert.False(t, m.CategoryTagID.Valid)
	assert.True(t, m.Memo.Valid)
	assert.Equal(t, "CREDIT", m.Side)

	back := mapping.ToDomainLedgerSplit(m)
	assert.Nil(t, back.CategoryTagID)
	assert.Equal(t, "split bill", *back.Memo)
}

func TestToDomainLedgerTransaction_AttachesSplits(t *testing.T) {
	hh := "h1"
	header := mapping.ToModelLedgerTransaction(domain.LedgerTransaction{
		TransactionID: "t1",
		HouseholdID:   &hh,
		TxnDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	splits := []domain.LedgerSplit{
		{SplitID: "s1", AccountID: "a1", Side: domain.Debit, AmountMinor: 10},
		{SplitID: "s2", AccountID: "a2", Side: domain.Credit, AmountMinor: 10},
	}

	txn := mapping.ToDomainLedgerTransaction(header, []models.LedgerSplit{mapping.ToModelLedgerSplit(splits[0]), mapping.ToModelLedgerSplit(splits[1])})
	assert.Equal(t, "h1", *txn.HouseholdID)
	assert.Len(t, txn.Splits, 2)
	assert.Equal(t, "s1", txn.Splits[0].SplitID)
	assert.Equal(t, domain.Credit, txn.Splits[1].Side)
}
