package ingestion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/findata/internal/alphavantage"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/shopspring/decimal"
)

// ErrInsufficientDays is returned when the provider has fewer trading days
// than the configured window.
var ErrInsufficientDays = errors.New("insufficient trading days")

// windowRecords validates series against symbol and converts its newest
// loadDays days into records, newest first.
//
// It fails on:
//   - a series reported for another symbol
//   - fewer than loadDays days available
//   - any price or volume that does not parse
func windowRecords(symbol string, s *alphavantage.Series, loadDays int) ([]models.FinancialRecord, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: empty series", alphavantage.ErrProvider)
	}
	if s.Symbol != symbol {
		return nil, fmt.Errorf("%w: requested %s, got %q", alphavantage.ErrSymbolMismatch, symbol, s.Symbol)
	}
	if len(s.Days) < loadDays {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientDays, loadDays, len(s.Days))
	}

	out := make([]models.FinancialRecord, 0, loadDays)
	for _, d := range s.Days[:loadDays] {
		rec, err := dayToRecord(symbol, d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Date.Format(models.DateLayout), err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// dayToRecord converts one provider day into a models.FinancialRecord. It is
// STRICT: empty or malformed cells fail the record.
//
//	1. open   → OpenPrice  (decimal)
//	4. close  → ClosePrice (decimal)
//	6. volume → Volume     (int64, >= 0; "5. volume" for the plain series)
func dayToRecord(symbol string, d alphavantage.Day) (models.FinancialRecord, error) {
	rec := models.FinancialRecord{Symbol: symbol, Date: models.TruncateDate(d.Date)}

	open, err := decimal.NewFromString(strings.TrimSpace(d.Open))
	if err != nil {
		return rec, fmt.Errorf("invalid open price %q: %v", d.Open, err)
	}
	rec.OpenPrice = open

	closePrice, err := decimal.NewFromString(strings.TrimSpace(d.Close))
	if err != nil {
		return rec, fmt.Errorf("invalid close price %q: %v", d.Close, err)
	}
	rec.ClosePrice = closePrice

	v, err := strconv.ParseInt(strings.TrimSpace(d.Volume), 10, 64)
	if err != nil {
		return rec, fmt.Errorf("invalid volume %q: %v", d.Volume, err)
	}
	if v < 0 {
		return rec, fmt.Errorf("negative volume %d", v)
	}
	rec.Volume = v

	return rec, nil
}
