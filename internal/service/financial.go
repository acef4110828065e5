package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/query"
	"github.com/guttosm/findata/internal/storage"
)

// NoFinancialDataMessage is the user-facing text for ErrNoFinancialData.
const NoFinancialDataMessage = "No financial data found"

// ErrNoFinancialData reports that no record matched a statistics request.
var ErrNoFinancialData = errors.New("no financial data found")

// FinancialService defines the read-side business logic behind the API:
// paginated listing and per-symbol statistics.
type FinancialService interface {
	ListRecords(ctx context.Context, filter query.Filter, page, limit int) (*models.Page, error)
	GetStatistics(ctx context.Context, start, end time.Time, symbol string) (*models.Statistics, error)
}

type financialService struct {
	repo storage.FinancialRepository
}

func NewFinancialService(repo storage.FinancialRepository) FinancialService {
	return &financialService{repo: repo}
}

// ListRecords returns one page of the records matching filter.
//
// page and limit must already be validated (>= 1). A page past the end yields
// an empty Records slice with the usual Count/Pages metadata.
func (s *financialService) ListRecords(ctx context.Context, filter query.Filter, page, limit int) (*models.Page, error) {
	p := query.Build(filter)

	count, err := s.repo.Count(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}

	out := &models.Page{
		Records: []models.FinancialRecord{},
		Count:   count,
		Page:    page,
		Limit:   limit,
		Pages:   TotalPages(count, limit),
	}

	// page <= Pages keeps (page-1)*limit below count, so Offset cannot overflow.
	if page > out.Pages {
		return out, nil
	}
	offset := Offset(page, limit)
	if offset >= count {
		return out, nil
	}

	records, err := s.repo.Find(ctx, p, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	out.Records = records
	return out, nil
}

// GetStatistics averages open, close and volume of symbol over [start, end].
func (s *financialService) GetStatistics(ctx context.Context, start, end time.Time, symbol string) (*models.Statistics, error) {
	start, end = models.TruncateDate(start), models.TruncateDate(end)

	records, err := s.repo.FindAll(ctx, query.Range(start, end, symbol))
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}

	means, err := ComputeMeans(records)
	if err != nil {
		return nil, err
	}

	return &models.Statistics{
		StartDate:              start,
		EndDate:                end,
		Symbol:                 symbol,
		AverageDailyOpenPrice:  means.Open,
		AverageDailyClosePrice: means.Close,
		AverageDailyVolume:     means.Volume,
	}, nil
}
