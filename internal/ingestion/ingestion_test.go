package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/guttosm/findata/internal/alphavantage"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/query"
	"github.com/guttosm/findata/internal/storage"
)

// fakeRepoIngestion records upserted batches keyed by symbol.
type fakeRepoIngestion struct {
	mu      sync.Mutex
	batches map[string][]models.FinancialRecord
	calls   int
	err     error
}

func (f *fakeRepoIngestion) Count(context.Context, query.Predicate) (int, error) { return 0, nil }
func (f *fakeRepoIngestion) Find(context.Context, query.Predicate, int, int) ([]models.FinancialRecord, error) {
	return nil, nil
}
func (f *fakeRepoIngestion) FindAll(context.Context, query.Predicate) ([]models.FinancialRecord, error) {
	return nil, nil
}
func (f *fakeRepoIngestion) UpsertBatch(_ context.Context, records []models.FinancialRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.batches == nil {
		f.batches = map[string][]models.FinancialRecord{}
	}
	if len(records) > 0 {
		f.batches[records[0].Symbol] = append([]models.FinancialRecord(nil), records...)
	}
	return nil
}

// fakeProvider serves canned series or errors per symbol.
type fakeProvider struct {
	mu     sync.Mutex
	series map[string]*alphavantage.Series
	errs   map[string]error
	order  []string
}

func (p *fakeProvider) DailyAdjusted(_ context.Context, symbol string) (*alphavantage.Series, error) {
	p.mu.Lock()
	p.order = append(p.order, symbol)
	p.mu.Unlock()
	if err := p.errs[symbol]; err != nil {
		return nil, err
	}
	if s, ok := p.series[symbol]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: unknown symbol %s", alphavantage.ErrProvider, symbol)
}

func withRepo(t *testing.T, r storage.FinancialRepository) {
	t.Helper()
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.FinancialRepository { return r }
	t.Cleanup(func() { repoCtor = old })
}

func TestLoadSymbols_SequentialInOrder(t *testing.T) {
	fr := &fakeRepoIngestion{}
	withRepo(t, fr)
	p := &fakeProvider{series: map[string]*alphavantage.Series{
		"IBM":  series("IBM", 20),
		"AAPL": series("AAPL", 14),
	}}

	if err := LoadSymbols(context.Background(), nil, p, []string{"IBM", "AAPL"}, 14, 1); err != nil {
		t.Fatalf("LoadSymbols: %v", err)
	}
	if fr.calls != 2 {
		t.Fatalf("expected one upsert per symbol, got %d", fr.calls)
	}
	if len(fr.batches["IBM"]) != 14 || len(fr.batches["AAPL"]) != 14 {
		t.Fatalf("unexpected batch sizes: IBM=%d AAPL=%d", len(fr.batches["IBM"]), len(fr.batches["AAPL"]))
	}
	if len(p.order) != 2 || p.order[0] != "IBM" || p.order[1] != "AAPL" {
		t.Fatalf("expected symbols fetched in order, got %v", p.order)
	}
}

func TestLoadSymbols_Parallel(t *testing.T) {
	fr := &fakeRepoIngestion{}
	withRepo(t, fr)
	symbols := []string{"IBM", "AAPL", "MSFT", "GOOG"}
	p := &fakeProvider{series: map[string]*alphavantage.Series{}}
	for _, s := range symbols {
		p.series[s] = series(s, 14)
	}

	if err := LoadSymbols(context.Background(), nil, p, symbols, 14, 8); err != nil {
		t.Fatalf("LoadSymbols: %v", err)
	}
	if len(fr.batches) != len(symbols) {
		t.Fatalf("expected %d symbols persisted, got %d", len(symbols), len(fr.batches))
	}
}

func TestLoadSymbols_FailsFast(t *testing.T) {
	cases := []struct {
		name     string
		provider *fakeProvider
		repoErr  error
		want     error
	}{
		{
			name:     "provider error",
			provider: &fakeProvider{errs: map[string]error{"IBM": alphavantage.ErrProvider}},
			want:     alphavantage.ErrProvider,
		},
		{
			name:     "insufficient days",
			provider: &fakeProvider{series: map[string]*alphavantage.Series{"IBM": series("IBM", 5)}},
			want:     ErrInsufficientDays,
		},
		{
			name:     "symbol mismatch",
			provider: &fakeProvider{series: map[string]*alphavantage.Series{"IBM": series("AAPL", 14)}},
			want:     alphavantage.ErrSymbolMismatch,
		},
		{
			name:     "upsert error",
			provider: &fakeProvider{series: map[string]*alphavantage.Series{"IBM": series("IBM", 14)}},
			repoErr:  storage.ErrSchemaMissing,
			want:     storage.ErrSchemaMissing,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fr := &fakeRepoIngestion{err: tc.repoErr}
			withRepo(t, fr)

			err := LoadSymbols(context.Background(), nil, tc.provider, []string{"IBM", "AAPL"}, 14, 1)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(tc.provider.order) != 1 {
				t.Fatalf("expected run to stop after the failing symbol, fetched %v", tc.provider.order)
			}
		})
	}
}

func TestLoadSymbols_InvalidArgs(t *testing.T) {
	withRepo(t, &fakeRepoIngestion{})
	p := &fakeProvider{}
	if err := LoadSymbols(context.Background(), nil, p, nil, 14, 1); err == nil {
		t.Fatalf("expected error for empty symbol list")
	}
	if err := LoadSymbols(context.Background(), nil, p, []string{"IBM"}, 0, 1); err == nil {
		t.Fatalf("expected error for non-positive load days")
	}
}

func TestLoadSymbols_CanceledContext(t *testing.T) {
	withRepo(t, &fakeRepoIngestion{})
	p := &fakeProvider{series: map[string]*alphavantage.Series{"IBM": series("IBM", 14)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := LoadSymbols(ctx, nil, p, []string{"IBM"}, 14, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(p.order) != 0 {
		t.Fatalf("no fetch expected on a canceled context, got %v", p.order)
	}
}
