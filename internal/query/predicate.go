// Package query turns optional listing filters into a typed predicate over
// the financial_data table.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/findata/internal/domain/models"
)

// Column is a filterable column of financial_data.
type Column string

const (
	ColumnSymbol Column = "symbol"
	ColumnDate   Column = "date"
)

// Op is a comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Condition is a single typed comparison: Column Op Value.
type Condition struct {
	Column Column
	Op     Op
	Value  any
}

// Predicate is a conjunction of conditions. The zero value matches everything.
type Predicate []Condition

// Filter carries the optional listing constraints. Nil fields are not applied.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Symbol    *string
}

// Build folds the present fields of f into a predicate.
//
// start_date means date >= start_date, end_date means date <= end_date and
// symbol is an exact match. No check is made that StartDate <= EndDate; an
// inverted range simply matches nothing.
func Build(f Filter) Predicate {
	var p Predicate
	if f.StartDate != nil {
		p = append(p, Condition{Column: ColumnDate, Op: OpGte, Value: models.TruncateDate(*f.StartDate)})
	}
	if f.EndDate != nil {
		p = append(p, Condition{Column: ColumnDate, Op: OpLte, Value: models.TruncateDate(*f.EndDate)})
	}
	if f.Symbol != nil {
		p = append(p, Condition{Column: ColumnSymbol, Op: OpEq, Value: *f.Symbol})
	}
	return p
}

// Range builds the mandatory date range + symbol predicate used by statistics.
func Range(start, end time.Time, symbol string) Predicate {
	return Build(Filter{StartDate: &start, EndDate: &end, Symbol: &symbol})
}

// Where renders p as a SQL WHERE clause using positional placeholders
// numbered from start ($start, $start+1, ...).
//
// It returns an empty string and no args for an empty predicate.
func (p Predicate) Where(start int) (string, []any) {
	if len(p) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(p))
	args := make([]any, 0, len(p))
	for i, c := range p {
		parts = append(parts, fmt.Sprintf("%s %s $%d", c.Column, c.Op, start+i))
		args = append(args, c.Value)
	}
	return "WHERE " + strings.Join(parts, " AND "), args
}

// Matches evaluates p against an in-memory record.
func (p Predicate) Matches(r models.FinancialRecord) bool {
	for _, c := range p {
		if !c.matches(r) {
			return false
		}
	}
	return true
}

func (c Condition) matches(r models.FinancialRecord) bool {
	switch c.Column {
	case ColumnSymbol:
		s, ok := c.Value.(string)
		return ok && c.Op == OpEq && r.Symbol == s
	case ColumnDate:
		d, ok := c.Value.(time.Time)
		if !ok {
			return false
		}
		rd := models.TruncateDate(r.Date)
		switch c.Op {
		case OpEq:
			return rd.Equal(d)
		case OpGte:
			return !rd.Before(d)
		case OpLte:
			return !rd.After(d)
		}
	}
	return false
}
