package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/guttosm/findata/config"

	_ "github.com/lib/pq" // registers the "postgres" driver
)

const (
	defaultDriver = "postgres"
	pingTimeout   = 5 * time.Second
)

// sqlOpener is an indirection for unit testing; defaults to openDB
var sqlOpener = openDB

// InitPostgres opens a connection pool to PostgreSQL and verifies it with a ping.
//
// The database/sql driver is chosen by cfg.Postgres.Driver: "postgres" (lib/pq,
// the default) or "pgx" (jackc/pgx stdlib, with statements traced to the
// logger at debug level). Both accept the same DSN.
//
// Example usage:
//
//	db, err := app.InitPostgres(config.AppConfig)
//	if err != nil {
//	    logger.L().Fatal().Err(err).Msg("db connect error")
//	}
//	defer db.Close()
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	driver := cfg.Postgres.Driver
	if driver == "" {
		driver = defaultDriver
	}

	db, err := sqlOpener(driver, cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by InitializeApp and RunIngestion;
// overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
