package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// LoadFromDB reads the material_prices table into a price list. Keys missing
// from the table fall back to the built-in defaults.
func LoadFromDB(ctx context.Context, db *sql.DB, currency string) (PriceList, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT key, price
		FROM material_prices
		ORDER BY key
	`)
	if err != nil {
		return PriceList{}, fmt.Errorf("query material prices: %w", err)
	}
	defer rows.Close()

	stored := make(map[string]decimal.Decimal)
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return PriceList{}, fmt.Errorf("scan material price: %w", err)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return PriceList{}, fmt.Errorf("parse material price %s: %w", key, err)
		}
		stored[key] = price
	}

	if err := rows.Err(); err != nil {
		return PriceList{}, fmt.Errorf("iterate material prices: %w", err)
	}

	list := Default().With(stored)
	if currency != "" {
		list.Currency = currency
	}
	return list, nil
}
