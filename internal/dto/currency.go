package dto

import "github.com/devdecrux/pocketr_api/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code      string `json:"code"`
	MinorUnit int    `json:"minorUnit"`
	Name      string `json:"name"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{Code: c.Code, MinorUnit: c.MinorUnit, Name: c.Name}
}

// ToListCurrencyResponse converts a slice of currencies.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = ToCurrencyResponse(c)
	}
	return out
}
