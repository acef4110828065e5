//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/query"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "findata",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=findata sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/findata?sslmode=disable", host, port.Port())
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, driver, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open(driver, dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func rec(symbol, date, open, close string, vol int64) models.FinancialRecord {
	d, _ := time.Parse(models.DateLayout, date)
	return models.FinancialRecord{
		Symbol:     symbol,
		Date:       d,
		OpenPrice:  decimal.RequireFromString(open),
		ClosePrice: decimal.RequireFromString(close),
		Volume:     vol,
	}
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()

	for i, driver := range []string{"postgres", "pgx"} {
		t.Run(driver, func(t *testing.T) {
			db := openDB(t, driver, dsn)
			defer db.Close()
			ctx := context.Background()

			if i == 0 {
				// before migrations the table is missing
				if _, err := NewFinancialRepository(db).Count(ctx, nil); !errors.Is(err, ErrSchemaMissing) {
					t.Fatalf("expected ErrSchemaMissing, got %v", err)
				}
			}
			if err := Migrate(ctx, db); err != nil {
				t.Fatalf("migrate: %v", err)
			}
			if _, err := db.Exec(`TRUNCATE financial_data`); err != nil {
				t.Fatalf("truncate: %v", err)
			}

			repo := NewFinancialRepository(db)
			if err := repo.UpsertBatch(ctx, []models.FinancialRecord{
				rec("IBM", "2023-01-03", "100.00", "105.00", 1000),
				rec("IBM", "2023-01-04", "105.00", "103.00", 1200),
				rec("AAPL", "2023-01-04", "130.28", "126.36", 70790800),
			}); err != nil {
				t.Fatalf("upsert: %v", err)
			}

			// overwrite one key with new values
			if err := repo.UpsertBatch(ctx, []models.FinancialRecord{rec("IBM", "2023-01-04", "106.10", "104.20", 1300)}); err != nil {
				t.Fatalf("re-upsert: %v", err)
			}

			n, err := repo.Count(ctx, nil)
			if err != nil || n != 3 {
				t.Fatalf("count=%d err=%v, want 3", n, err)
			}

			all, err := repo.FindAll(ctx, query.Build(query.Filter{}))
			if err != nil {
				t.Fatalf("find all: %v", err)
			}
			order := ""
			for _, r := range all {
				order += r.Symbol + "@" + r.Date.Format(models.DateLayout) + " "
			}
			if order != "IBM@2023-01-03 AAPL@2023-01-04 IBM@2023-01-04 " {
				t.Fatalf("unexpected order %q", order)
			}
			last := all[2]
			if !last.OpenPrice.Equal(decimal.RequireFromString("106.10")) || last.Volume != 1300 {
				t.Fatalf("expected overwritten values, got %+v", last)
			}

			page, err := repo.Find(ctx, nil, 1, 1)
			if err != nil || len(page) != 1 || page[0].Symbol != "AAPL" {
				t.Fatalf("unexpected page: %+v err=%v", page, err)
			}

			ibm, err := repo.FindAll(ctx, query.Range(all[0].Date, all[2].Date, "IBM"))
			if err != nil || len(ibm) != 2 {
				t.Fatalf("range: %d rows err=%v", len(ibm), err)
			}
		})
	}
}
