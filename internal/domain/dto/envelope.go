// Package dto holds the JSON shapes returned by the HTTP API.
package dto

import (
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/shopspring/decimal"
)

func init() {
	// prices are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Info carries the error slot of every response.
//
// Error is "" on success, a message string on handled errors, and a map of
// field path to messages on validation errors.
type Info struct {
	Error any `json:"error" swaggertype:"string" example:""`
}

// FieldErrors maps a dotted field path (e.g. "query.limit") to its messages.
type FieldErrors map[string][]string

// Pagination describes the page returned by a listing.
type Pagination struct {
	Count int `json:"count" example:"3"`
	Page  int `json:"page" example:"2"`
	Limit int `json:"limit" example:"1"`
	Pages int `json:"pages" example:"3"`
}

// FinancialRecord is one (symbol, date) row.
type FinancialRecord struct {
	Symbol     string          `json:"symbol" example:"IBM"`
	Date       string          `json:"date" example:"2023-01-03"`
	OpenPrice  decimal.Decimal `json:"open_price" swaggertype:"number" example:"100.5"`
	ClosePrice decimal.Decimal `json:"close_price" swaggertype:"number" example:"105.25"`
	Volume     int64           `json:"volume" example:"1000"`
}

// FinancialDataResponse is the body of GET /financial_data/.
type FinancialDataResponse struct {
	Data       []FinancialRecord `json:"data"`
	Pagination Pagination        `json:"pagination"`
	Info       Info              `json:"info"`
}

// Statistics is the data of GET /statistics/.
type Statistics struct {
	StartDate              string  `json:"start_date" example:"2023-01-01"`
	EndDate                string  `json:"end_date" example:"2023-01-31"`
	Symbol                 string  `json:"symbol" example:"IBM"`
	AverageDailyOpenPrice  float64 `json:"average_daily_open_price" example:"102.5"`
	AverageDailyClosePrice float64 `json:"average_daily_close_price" example:"104"`
	AverageDailyVolume     float64 `json:"average_daily_volume" example:"1100"`
}

// StatisticsResponse is the body of GET /statistics/. Data is null when no
// record matched.
type StatisticsResponse struct {
	Data *Statistics `json:"data"`
	Info Info        `json:"info"`
}

// NewFinancialDataResponse maps a service page to its response body.
func NewFinancialDataResponse(p *models.Page) FinancialDataResponse {
	data := make([]FinancialRecord, 0, len(p.Records))
	for _, r := range p.Records {
		data = append(data, FinancialRecord{
			Symbol:     r.Symbol,
			Date:       r.Date.Format(models.DateLayout),
			OpenPrice:  r.OpenPrice,
			ClosePrice: r.ClosePrice,
			Volume:     r.Volume,
		})
	}
	return FinancialDataResponse{
		Data: data,
		Pagination: Pagination{
			Count: p.Count,
			Page:  p.Page,
			Limit: p.Limit,
			Pages: p.Pages,
		},
		Info: Info{Error: ""},
	}
}

// NewInvalidFinancialDataResponse is returned when listing parameters fail
// validation: no rows and zeroed pagination with a single page.
func NewInvalidFinancialDataResponse(fields FieldErrors) FinancialDataResponse {
	return FinancialDataResponse{
		Data:       []FinancialRecord{},
		Pagination: Pagination{Pages: 1},
		Info:       Info{Error: fields},
	}
}

// NewFinancialDataErrorResponse keeps the listing shape on unexpected
// failures: no rows, a single empty page and the message in info.error.
func NewFinancialDataErrorResponse(message string) FinancialDataResponse {
	return FinancialDataResponse{
		Data:       []FinancialRecord{},
		Pagination: Pagination{Pages: 1},
		Info:       Info{Error: message},
	}
}

// NewStatisticsResponse maps computed statistics to their response body.
func NewStatisticsResponse(s *models.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Data: &Statistics{
			StartDate:              s.StartDate.Format(models.DateLayout),
			EndDate:                s.EndDate.Format(models.DateLayout),
			Symbol:                 s.Symbol,
			AverageDailyOpenPrice:  s.AverageDailyOpenPrice,
			AverageDailyClosePrice: s.AverageDailyClosePrice,
			AverageDailyVolume:     s.AverageDailyVolume,
		},
		Info: Info{Error: ""},
	}
}

// NewEmptyStatisticsResponse carries a message and no data.
func NewEmptyStatisticsResponse(message string) StatisticsResponse {
	return StatisticsResponse{Info: Info{Error: message}}
}

// NewInvalidStatisticsResponse is returned when statistics parameters fail
// validation.
func NewInvalidStatisticsResponse(fields FieldErrors) StatisticsResponse {
	return StatisticsResponse{Info: Info{Error: fields}}
}

// Add appends msg under "query.<field>" and returns the (possibly new) map.
func (f FieldErrors) Add(field, msg string) FieldErrors {
	if f == nil {
		f = FieldErrors{}
	}
	key := "query." + field
	f[key] = append(f[key], msg)
	return f
}
