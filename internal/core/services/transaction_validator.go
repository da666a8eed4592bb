package services

import (
	"math"

	"github.com/devdecrux/pocketr_api/internal/apperrors"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// TransactionValidator runs the stateless structural and double-entry checks on proposed splits.
type TransactionValidator struct{}

// NewTransactionValidator creates a TransactionValidator.
func NewTransactionValidator() TransactionValidator {
	return TransactionValidator{}
}

// ValidateSplits checks split count, amount positivity and side validity before the
// debit/credit balance, so the balance check only ever sees well-formed input.
func (TransactionValidator) ValidateSplits(splits []domain.LedgerSplit) error {
	if len(splits) < 2 {
		return apperrors.NewInvalidTransactionError("Transaction must have at least 2 splits")
	}

	for _, s := range splits {
		if s.AmountMinor <= 0 {
			return apperrors.NewInvalidTransactionError("All split amounts must be greater than 0")
		}
	}

	for _, s := range splits {
		if !s.Side.IsValid() {
			return apperrors.NewInvalidTransactionError("Invalid split side: %s", s.Side)
		}
	}

	var debits, credits int64
	for _, s := range splits {
		total := &credits
		if s.Side == domain.Debit {
			total = &debits
		}
		if *total > math.MaxInt64-s.AmountMinor {
			return apperrors.NewInvalidTransactionError("Sum of split amounts exceeds supported range")
		}
		*total += s.AmountMinor
	}

	if debits != credits {
		return apperrors.NewInvalidTransactionError(
			"Double-entry violation: sum of debits (%d) must equal sum of credits (%d)", debits, credits)
	}
	return nil
}

// ValidateCurrencyConsistency requires every account to be denominated in the transaction currency.
func (TransactionValidator) ValidateCurrencyConsistency(accounts []domain.Account, txnCurrency string) error {
	for _, acc := range accounts {
		if acc.CurrencyCode != txnCurrency {
			return apperrors.NewInvalidTransactionError(
				"Account '%s' has currency %s but transaction currency is %s", acc.Name, acc.CurrencyCode, txnCurrency)
		}
	}
	return nil
}
