package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies_Embedded(t *testing.T) {
	currencies, err := Currencies()
	require.NoError(t, err)
	require.NotEmpty(t, currencies)

	byCode := map[string]int{}
	for _, c := range currencies {
		byCode[c.Code] = c.MinorUnit
	}
	assert.Equal(t, 2, byCode["EUR"])
	assert.Equal(t, 0, byCode["JPY"])
	assert.Equal(t, 3, byCode["KWD"])
}

func TestParseCurrencies_NormalizesCode(t *testing.T) {
	currencies, err := ParseCurrencies([]byte("currencies:\n  - {code: ' usd ', minorUnit: 2, name: US Dollar}\n"))
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, "USD", currencies[0].Code)
	assert.Equal(t, "US Dollar", currencies[0].Name)
}

func TestParseCurrencies_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "currencies: [\n"},
		{"bad code", "currencies:\n  - {code: EURO, minorUnit: 2, name: x}\n"},
		{"minor unit too large", "currencies:\n  - {code: EUR, minorUnit: 5, name: x}\n"},
		{"duplicate", "currencies:\n  - {code: EUR, minorUnit: 2, name: x}\n  - {code: eur, minorUnit: 2, name: y}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCurrencies([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
