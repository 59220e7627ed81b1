package pricing

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Overrides is the content of a price override file:
//
//	currency: RUB
//	prices:
//	  brick.single: 13.5
//	  cement.bag: 390
type Overrides struct {
	Currency string            `yaml:"currency"`
	Prices   map[string]string `yaml:"prices"`
}

// DecodeOverrides parses a YAML override document. Every price must be a
// non-negative decimal.
func DecodeOverrides(r io.Reader) (Overrides, map[string]decimal.Decimal, error) {
	var doc Overrides
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Overrides{}, map[string]decimal.Decimal{}, nil
		}
		return Overrides{}, nil, fmt.Errorf("decode price overrides: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(doc.Prices))
	for key, raw := range doc.Prices {
		if key == "" {
			return Overrides{}, nil, fmt.Errorf("price override with empty key")
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return Overrides{}, nil, fmt.Errorf("price %s must be numeric: %w", key, err)
		}
		if price.IsNegative() {
			return Overrides{}, nil, fmt.Errorf("price %s must be greater than or equal to 0", key)
		}
		prices[key] = price
	}

	return doc, prices, nil
}

// LoadOverridesFile reads a YAML override file. A missing file yields no
// overrides.
func LoadOverridesFile(path string) (Overrides, map[string]decimal.Decimal, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Overrides{}, map[string]decimal.Decimal{}, nil
		}
		return Overrides{}, nil, fmt.Errorf("open price overrides: %w", err)
	}
	defer f.Close()

	return DecodeOverrides(f)
}
