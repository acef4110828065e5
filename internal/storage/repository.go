package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/query"
	"github.com/jackc/pgx/v5/pgconn"
	pq "github.com/lib/pq"
)

// ErrSchemaMissing is returned when financial_data does not exist yet.
var ErrSchemaMissing = errors.New("financial_data table does not exist, run migrations first")

const undefinedTable = "42P01"

const selectColumns = `SELECT symbol, date, open_price, close_price, volume FROM financial_data`

// Rows are always returned in a total, stable order.
const orderBy = `ORDER BY date ASC, symbol ASC`

// FinancialRepository defines contract for DB operations.
type FinancialRepository interface {
	Count(ctx context.Context, p query.Predicate) (int, error)
	Find(ctx context.Context, p query.Predicate, limit, offset int) ([]models.FinancialRecord, error)
	FindAll(ctx context.Context, p query.Predicate) ([]models.FinancialRecord, error)
	UpsertBatch(ctx context.Context, records []models.FinancialRecord) error
}

type financialRepository struct {
	db *sql.DB
}

func NewFinancialRepository(db *sql.DB) FinancialRepository {
	return &financialRepository{db: db}
}

// Count returns how many rows satisfy p.
func (r *financialRepository) Count(ctx context.Context, p query.Predicate) (int, error) {
	where, args := p.Where(1)
	var n int
	if err := r.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM financial_data %s`, where), args...).Scan(&n); err != nil {
		return 0, classify(err)
	}
	return n, nil
}

// Find returns at most limit rows satisfying p, skipping the first offset.
func (r *financialRepository) Find(ctx context.Context, p query.Predicate, limit, offset int) ([]models.FinancialRecord, error) {
	where, args := p.Where(1)
	next := len(args) + 1
	q := fmt.Sprintf(`%s %s %s LIMIT $%d OFFSET $%d`, selectColumns, where, orderBy, next, next+1)
	args = append(args, limit, offset)
	return r.query(ctx, q, args...)
}

// FindAll returns every row satisfying p.
func (r *financialRepository) FindAll(ctx context.Context, p query.Predicate) ([]models.FinancialRecord, error) {
	where, args := p.Where(1)
	return r.query(ctx, fmt.Sprintf(`%s %s %s`, selectColumns, where, orderBy), args...)
}

func (r *financialRepository) query(ctx context.Context, q string, args ...any) ([]models.FinancialRecord, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, classify(err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.FinancialRecord, 0)
	for rows.Next() {
		var rec models.FinancialRecord
		if err := rows.Scan(&rec.Symbol, &rec.Date, &rec.OpenPrice, &rec.ClosePrice, &rec.Volume); err != nil {
			return nil, err
		}
		rec.Date = models.TruncateDate(rec.Date)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// UpsertBatch inserts records in a single statement; rows whose (symbol, date)
// already exist get their prices and volume overwritten.
//
// The batch is passed as parallel arrays and expanded server-side with unnest,
// so the statement shape does not depend on the batch size.
func (r *financialRepository) UpsertBatch(ctx context.Context, records []models.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}

	symbols := make([]string, 0, len(records))
	dates := make([]string, 0, len(records))
	opens := make([]string, 0, len(records))
	closes := make([]string, 0, len(records))
	volumes := make([]int64, 0, len(records))

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		d := rec.Date.Format(models.DateLayout)
		key := rec.Symbol + "|" + d
		if _, dup := seen[key]; dup {
			// ON CONFLICT cannot touch the same row twice in one statement.
			return fmt.Errorf("duplicate record %s %s in batch", rec.Symbol, d)
		}
		seen[key] = struct{}{}

		symbols = append(symbols, rec.Symbol)
		dates = append(dates, d)
		opens = append(opens, rec.OpenPrice.String())
		closes = append(closes, rec.ClosePrice.String())
		volumes = append(volumes, rec.Volume)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
		SELECT * FROM unnest($1::text[], $2::date[], $3::numeric[], $4::numeric[], $5::bigint[])
		ON CONFLICT (symbol, date)
		DO UPDATE SET open_price = EXCLUDED.open_price,
					  close_price = EXCLUDED.close_price,
					  volume = EXCLUDED.volume
	`, pq.Array(symbols), pq.Array(dates), pq.Array(opens), pq.Array(closes), pq.Array(volumes))
	return classify(err)
}

// classify maps driver errors we know about to package errors. Both lib/pq and
// pgx report SQLSTATE codes, so either driver can sit behind *sql.DB.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable {
		return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
	}
	return err
}
