package app

import (
	"context"
	"fmt"

	"github.com/guttosm/findata/config"
	"github.com/guttosm/findata/internal/alphavantage"
	"github.com/guttosm/findata/internal/ingestion"
	"github.com/guttosm/findata/internal/storage"
)

// indirections for unit testing
var (
	loadSymbols = ingestion.LoadSymbols
	migrate     = storage.Migrate
)

// RunIngestion connects to Postgres, applies migrations and loads the
// configured window for every symbol.
//
// symbols overrides cfg.Ingest.Symbols when non-empty.
func RunIngestion(ctx context.Context, cfg config.Config, symbols []string, parallel int) error {
	if len(symbols) > 0 {
		cfg.Ingest.Symbols = symbols
	}
	if err := config.RequireAlphaVantage(cfg); err != nil {
		return err
	}

	db, err := postgresOpener(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	client := alphavantage.NewClient(alphavantage.Config{
		APIKey:  cfg.AlphaVantage.APIKey,
		BaseURL: cfg.AlphaVantage.BaseURL,
		Timeout: cfg.AlphaVantage.Timeout,
	}, nil)

	return loadSymbols(ctx, db, client, cfg.Ingest.Symbols, cfg.Ingest.LoadDays, parallel)
}

// RunMigrations connects to Postgres and applies pending migrations.
func RunMigrations(ctx context.Context, cfg config.Config) error {
	db, err := postgresOpener(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	return migrate(ctx, db)
}
