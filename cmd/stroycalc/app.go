package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Simplici0/stroycalc/internal/calc"
	"github.com/Simplici0/stroycalc/internal/config"
	"github.com/Simplici0/stroycalc/internal/db"
	"github.com/Simplici0/stroycalc/internal/format"
	"github.com/Simplici0/stroycalc/internal/history"
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/migrations"
	"github.com/Simplici0/stroycalc/internal/pricing"
	"github.com/Simplici0/stroycalc/internal/seed"
)

// app wires the engine, history store and formatter for one process.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	db     *sql.DB
	engine *calc.Engine
	store  *history.Store
	format *format.Formatter
}

func openApp(ctx context.Context, cfg config.Config, log zerolog.Logger) (*app, error) {
	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, database, log); err != nil {
		database.Close()
		return nil, err
	}

	prices, err := loadPrices(ctx, database, cfg, log)
	if err != nil {
		database.Close()
		return nil, err
	}

	var backend history.Backend
	switch cfg.HistoryBackend {
	case config.HistoryFile:
		backend = history.NewFileBackend(cfg.HistoryFile)
	default:
		backend = history.NewSQLiteBackend(database)
	}

	log.Debug().
		Str("db", cfg.DBPath).
		Str("history", cfg.HistoryBackend).
		Str("currency", prices.Currency).
		Msg("application ready")

	return &app{
		cfg:    cfg,
		log:    log,
		db:     database,
		engine: calc.New(materials.Default(), prices),
		store:  history.New(backend),
		format: format.New(cfg.Locale, prices.Currency),
	}, nil
}

// loadPrices seeds material_prices with the built-in list and the optional
// override file, then reads the effective list back.
func loadPrices(ctx context.Context, database *sql.DB, cfg config.Config, log zerolog.Logger) (pricing.PriceList, error) {
	currency := cfg.Currency
	seedCfg := seed.Config{Entries: pricing.DefaultEntries()}

	if cfg.PricesFile != "" {
		doc, overrides, err := pricing.LoadOverridesFile(cfg.PricesFile)
		if err != nil {
			return pricing.PriceList{}, err
		}
		seedCfg.Overrides = overrides
		if doc.Currency != "" {
			currency = doc.Currency
		}
	}

	stats, err := seed.Run(ctx, database, seedCfg)
	if err != nil {
		return pricing.PriceList{}, fmt.Errorf("seed prices: %w", err)
	}
	if stats.Inserts > 0 || stats.Updates > 0 {
		log.Info().Int("inserts", stats.Inserts).Int("updates", stats.Updates).Msg("material prices seeded")
	}

	return pricing.LoadFromDB(ctx, database, currency)
}

func (a *app) Close() error {
	return a.db.Close()
}
