package service

import (
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of fractional digits kept by the mean.
const divisionPrecision = 16

// Means holds the arithmetic means of a set of records.
type Means struct {
	Open   float64
	Close  float64
	Volume float64
}

// ComputeMeans sums the exact decimal prices and the integer volumes, then
// divides once by the number of records. It returns ErrNoFinancialData for
// an empty slice.
func ComputeMeans(records []models.FinancialRecord) (Means, error) {
	if len(records) == 0 {
		return Means{}, ErrNoFinancialData
	}

	openSum := decimal.Zero
	closeSum := decimal.Zero
	volSum := decimal.Zero
	for _, r := range records {
		openSum = openSum.Add(r.OpenPrice)
		closeSum = closeSum.Add(r.ClosePrice)
		volSum = volSum.Add(decimal.NewFromInt(r.Volume))
	}

	n := decimal.NewFromInt(int64(len(records)))
	return Means{
		Open:   openSum.DivRound(n, divisionPrecision).InexactFloat64(),
		Close:  closeSum.DivRound(n, divisionPrecision).InexactFloat64(),
		Volume: volSum.DivRound(n, divisionPrecision).InexactFloat64(),
	}, nil
}
