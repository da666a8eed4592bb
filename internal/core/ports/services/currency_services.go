package services

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// CurrencyRegistry resolves currency codes to their minor-unit precision.
type CurrencyRegistry interface {
	// GetCurrencyByCode retrieves a currency, returning apperrors.ErrNotFound if unknown.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySeeder populates the currency table.
type CurrencySeeder interface {
	// SeedCurrencies inserts the given currencies when the table is empty and reports how many were written.
	SeedCurrencies(ctx context.Context, currencies []domain.Currency) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyRegistry
	CurrencySeeder
}
