package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMinorUnits renders an integer minor-unit amount as a fixed-point decimal string
// using the currency's precision.
// Example: 1234 with EUR (minor unit 2) returns "12.34"
// Example: 1234 with JPY (minor unit 0) returns "1234"
// Example: -5 with BHD (minor unit 3) returns "-0.005"
func FormatMinorUnits(amountMinor int64, currency domain.Currency) string {
	exp := int32(currency.MinorUnit)
	return decimal.New(amountMinor, -exp).StringFixed(exp)
}

// DisplayMinorUnits renders an amount with the currency's symbol and grouping, e.g. "€12.34".
// Currencies unknown to the formatter fall back to "<amount> <code>".
func DisplayMinorUnits(amountMinor int64, currency domain.Currency) string {
	cur := money.GetCurrency(currency.Code)
	if cur == nil || cur.Fraction != currency.MinorUnit {
		return FormatMinorUnits(amountMinor, currency) + " " + currency.Code
	}
	return money.New(amountMinor, currency.Code).Display()
}
