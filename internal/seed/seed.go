// Package seed holds reference data shipped with the binary.
package seed

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

//go:embed currencies.yaml
var currenciesYAML []byte

type currencyFile struct {
	Currencies []domain.Currency `yaml:"currencies"`
}

// Currencies returns the built-in currency list.
func Currencies() ([]domain.Currency, error) {
	return ParseCurrencies(currenciesYAML)
}

// ParseCurrencies decodes and validates a currency seed document.
func ParseCurrencies(data []byte) ([]domain.Currency, error) {
	var f currencyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse currency seed: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Currencies))
	for i := range f.Currencies {
		c := &f.Currencies[i]
		c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
		if len(c.Code) != 3 {
			return nil, fmt.Errorf("currency seed entry %d: invalid code %q", i, c.Code)
		}
		if c.MinorUnit < 0 || c.MinorUnit > 4 {
			return nil, fmt.Errorf("currency seed entry %s: minorUnit %d out of range", c.Code, c.MinorUnit)
		}
		if _, dup := seen[c.Code]; dup {
			return nil, fmt.Errorf("currency seed entry %s: duplicate code", c.Code)
		}
		seen[c.Code] = struct{}{}
	}
	return f.Currencies, nil
}
