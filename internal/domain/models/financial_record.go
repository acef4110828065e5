package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage layout of a trading date.
const DateLayout = "2006-01-02"

// FinancialRecord is one trading day of a ticker as stored in financial_data.
//
// Fields:
//   - Symbol: ticker symbol (e.g., "IBM").
//   - Date: trading date at UTC midnight, no time component.
//   - OpenPrice / ClosePrice: exact decimals, never floats.
//   - Volume: number of shares traded that day.
//
// (Symbol, Date) is the natural key; at most one record exists per symbol per day.
type FinancialRecord struct {
	Symbol     string
	Date       time.Time
	OpenPrice  decimal.Decimal
	ClosePrice decimal.Decimal
	Volume     int64
}

// TruncateDate drops the clock part of t and moves it to UTC midnight.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
