package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/stroycalc/internal/pricing"
)

// Config contains the values required by startup seed.
type Config struct {
	// Entries are inserted when their key is absent. Existing rows are kept,
	// so prices edited in the database survive restarts.
	Entries []pricing.Entry
	// Overrides replace stored prices, typically from PRICES_FILE.
	Overrides map[string]decimal.Decimal
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run seeds material_prices in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	now := time.Now().UTC().Format(time.RFC3339)

	for _, entry := range cfg.Entries {
		if err := ensurePrice(ctx, tx, entry, now, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Overrides)) {
		if err := applyOverride(ctx, tx, key, cfg.Overrides[key], now, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensurePrice(ctx context.Context, tx *sql.Tx, entry pricing.Entry, now string, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM material_prices WHERE key = ? LIMIT 1)`, entry.Key).Scan(&exists); err != nil {
		return fmt.Errorf("check price %s existence: %w", entry.Key, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO material_prices (key, price, unit, updated_at)
		VALUES (?, ?, ?, ?)
	`, entry.Key, entry.Price.String(), entry.Unit, now); err != nil {
		return fmt.Errorf("insert price %s: %w", entry.Key, err)
	}
	stats.Inserts++
	return nil
}

func applyOverride(ctx context.Context, tx *sql.Tx, key string, price decimal.Decimal, now string, stats *Stats) error {
	var raw string
	err := tx.QueryRowContext(ctx, `SELECT price FROM material_prices WHERE key = ?`, key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO material_prices (key, price, unit, updated_at)
			VALUES (?, ?, '', ?)
		`, key, price.String(), now); err != nil {
			return fmt.Errorf("insert override %s: %w", key, err)
		}
		stats.Inserts++
		return nil
	case err != nil:
		return fmt.Errorf("read price %s: %w", key, err)
	}

	if current, err := decimal.NewFromString(raw); err == nil && current.Equal(price) {
		return nil
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE material_prices SET price = ?, updated_at = ? WHERE key = ?
	`, price.String(), now, key); err != nil {
		return fmt.Errorf("update price %s: %w", key, err)
	}
	stats.Updates++
	return nil
}
