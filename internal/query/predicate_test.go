package query

import (
	"reflect"
	"testing"
	"time"

	"github.com/guttosm/findata/internal/domain/models"
)

func day(s string) time.Time {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func TestBuild_Where(t *testing.T) {
	cases := []struct {
		name      string
		filter    Filter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			filter:    Filter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "start only",
			filter:    Filter{StartDate: ptr(day("2023-01-01"))},
			wantWhere: "WHERE date >= $1",
			wantArgs:  []any{day("2023-01-01")},
		},
		{
			name:      "end only",
			filter:    Filter{EndDate: ptr(day("2023-01-31"))},
			wantWhere: "WHERE date <= $1",
			wantArgs:  []any{day("2023-01-31")},
		},
		{
			name:      "symbol only",
			filter:    Filter{Symbol: ptr("IBM")},
			wantWhere: "WHERE symbol = $1",
			wantArgs:  []any{"IBM"},
		},
		{
			name:      "all filters",
			filter:    Filter{StartDate: ptr(day("2023-01-01")), EndDate: ptr(day("2023-01-31")), Symbol: ptr("IBM")},
			wantWhere: "WHERE date >= $1 AND date <= $2 AND symbol = $3",
			wantArgs:  []any{day("2023-01-01"), day("2023-01-31"), "IBM"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := Build(tc.filter).Where(1)
			if where != tc.wantWhere {
				t.Fatalf("where=%q, want %q", where, tc.wantWhere)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Fatalf("args=%v, want %v", args, tc.wantArgs)
			}
		})
	}
}

func TestWhere_PlaceholderOffset(t *testing.T) {
	where, args := Build(Filter{Symbol: ptr("AAPL"), StartDate: ptr(day("2023-01-01"))}).Where(3)
	if where != "WHERE date >= $3 AND symbol = $4" {
		t.Fatalf("unexpected where %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuild_TruncatesClock(t *testing.T) {
	withClock := time.Date(2023, 1, 3, 15, 4, 5, 0, time.FixedZone("X", 3600))
	p := Build(Filter{StartDate: &withClock})
	got := p[0].Value.(time.Time)
	if !got.Equal(day("2023-01-03")) {
		t.Fatalf("expected date-only value, got %v", got)
	}
}

func TestMatches(t *testing.T) {
	records := []models.FinancialRecord{
		{Symbol: "IBM", Date: day("2023-01-03")},
		{Symbol: "IBM", Date: day("2023-01-04")},
		{Symbol: "AAPL", Date: day("2023-01-04")},
		{Symbol: "AAPL", Date: day("2023-02-01")},
	}

	cases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "empty filter matches all", filter: Filter{}, want: 4},
		{name: "symbol", filter: Filter{Symbol: ptr("IBM")}, want: 2},
		{name: "inclusive start", filter: Filter{StartDate: ptr(day("2023-01-04"))}, want: 3},
		{name: "inclusive end", filter: Filter{EndDate: ptr(day("2023-01-04"))}, want: 3},
		{name: "conjunction", filter: Filter{Symbol: ptr("AAPL"), EndDate: ptr(day("2023-01-31"))}, want: 1},
		{name: "inverted range is empty", filter: Filter{StartDate: ptr(day("2023-02-01")), EndDate: ptr(day("2023-01-01"))}, want: 0},
		{name: "unknown symbol", filter: Filter{Symbol: ptr("MSFT")}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Build(tc.filter)
			n := 0
			for _, r := range records {
				if p.Matches(r) {
					n++
				}
			}
			if n != tc.want {
				t.Fatalf("matched %d, want %d", n, tc.want)
			}
		})
	}
}

// Adding a filter must never widen the result set.
func TestMatches_FiltersOnlyNarrow(t *testing.T) {
	records := []models.FinancialRecord{
		{Symbol: "IBM", Date: day("2023-01-03")},
		{Symbol: "AAPL", Date: day("2023-01-05")},
	}
	wide := Build(Filter{Symbol: ptr("IBM")})
	narrow := Build(Filter{Symbol: ptr("IBM"), StartDate: ptr(day("2023-01-04"))})
	for _, r := range records {
		if narrow.Matches(r) && !wide.Matches(r) {
			t.Fatalf("narrow predicate matched %+v but wide did not", r)
		}
	}
}

func TestRange(t *testing.T) {
	p := Range(day("2023-01-01"), day("2023-01-31"), "IBM")
	where, args := p.Where(1)
	if where != "WHERE date >= $1 AND date <= $2 AND symbol = $3" || len(args) != 3 {
		t.Fatalf("unexpected range predicate: %q %v", where, args)
	}
}
