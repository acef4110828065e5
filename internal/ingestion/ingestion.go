// Package ingestion loads recent daily prices from Alpha Vantage into
// financial_data.
package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/findata/internal/alphavantage"
	"github.com/guttosm/findata/internal/logger"
	"github.com/guttosm/findata/internal/storage"
)

// Provider fetches a daily series for one symbol. *alphavantage.Client
// satisfies it.
type Provider interface {
	DailyAdjusted(ctx context.Context, symbol string) (*alphavantage.Series, error)
}

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.FinancialRepository {
	return storage.NewFinancialRepository(db)
}

// LoadSymbols fetches and upserts the last loadDays trading days of every
// symbol.
//
// Behavior:
//   - parallel <= 1 processes symbols one after the other, in order.
//   - parallel > 1 runs up to that many symbols at once.
//   - Each symbol's window is written with a single upsert statement.
//   - The first error cancels the remaining symbols and is returned.
func LoadSymbols(ctx context.Context, db *sql.DB, provider Provider, symbols []string, loadDays, parallel int) error {
	if len(symbols) == 0 {
		return errors.New("no symbols to ingest")
	}
	if loadDays < 1 {
		return fmt.Errorf("load days must be positive, got %d", loadDays)
	}
	if parallel < 1 {
		parallel = 1
	}
	if parallel > len(symbols) {
		parallel = len(symbols)
	}

	repo := repoCtor(db)

	logger.L().Info().Strs("symbols", symbols).Int("load_days", loadDays).Int("max_parallel", parallel).Msg("ingestion start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, symbol := range symbols {
		idx, sym := i, symbol
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			logger.L().Info().Int("idx", idx+1).Int("total", len(symbols)).Str("symbol", sym).Msg("symbol start")

			n, err := loadSymbol(gctx, provider, repo, sym, loadDays)
			if err != nil {
				logger.L().Error().Str("symbol", sym).Dur("elapsed", time.Since(start)).Err(err).Msg("symbol failed")
				return fmt.Errorf("symbol %s: %w", sym, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(symbols)).Str("symbol", sym).Int("rows", n).Dur("elapsed", time.Since(start)).Msg("symbol done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.L().Info().Int("symbols", len(symbols)).Msg("ingestion done")
	return nil
}

func loadSymbol(ctx context.Context, provider Provider, repo storage.FinancialRepository, symbol string, loadDays int) (int, error) {
	series, err := provider.DailyAdjusted(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}

	records, err := windowRecords(symbol, series, loadDays)
	if err != nil {
		return 0, err
	}

	if err := repo.UpsertBatch(ctx, records); err != nil {
		return 0, fmt.Errorf("upsert: %w", err)
	}
	return len(records), nil
}
