package utils

import (
	"testing"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		currency domain.Currency
		want     string
	}{
		{"two decimals", 1234, domain.Currency{Code: "EUR", MinorUnit: 2}, "12.34"},
		{"zero decimals", 1234, domain.Currency{Code: "JPY", MinorUnit: 0}, "1234"},
		{"three decimals negative", -5, domain.Currency{Code: "BHD", MinorUnit: 3}, "-0.005"},
		{"zero", 0, domain.Currency{Code: "USD", MinorUnit: 2}, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinorUnits(tt.amount, tt.currency))
		})
	}
}

func TestDisplayMinorUnits(t *testing.T) {
	assert.Equal(t, "$12.34", DisplayMinorUnits(1234, domain.Currency{Code: "USD", MinorUnit: 2}))
	assert.Equal(t, "12.34 XXZ", DisplayMinorUnits(1234, domain.Currency{Code: "XXZ", MinorUnit: 2}))
}
