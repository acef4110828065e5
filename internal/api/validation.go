package api

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/findata/internal/domain/dto"
	"github.com/guttosm/findata/internal/domain/models"
	"github.com/guttosm/findata/internal/query"
)

var registerOnce sync.Once

// registerFieldNames makes validator report fields by their form tag
// ("start_date") instead of the Go field name ("StartDate").
func registerFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// listQuery is the raw query of GET /financial_data/. Integers are bound as
// strings so malformed values are reported per field; numeric lets a signed
// value through to the min=1 check on paging.
type listQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Symbol    string `form:"symbol"`
	Limit     string `form:"limit,default=5" binding:"numeric"`
	Page      string `form:"page,default=1" binding:"numeric"`
}

// paging is validated after the integers are parsed.
type paging struct {
	Limit int `form:"limit" binding:"min=1"`
	Page  int `form:"page" binding:"min=1"`
}

// statisticsQuery is the query of GET /statistics/.
type statisticsQuery struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
	Symbol    string `form:"symbol" binding:"required"`
}

type listParams struct {
	filter query.Filter
	page   int
	limit  int
}

type statisticsParams struct {
	start, end time.Time
	symbol     string
}

func bindList(c *gin.Context) (listParams, dto.FieldErrors) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return listParams{}, fieldErrors(err)
	}

	var pg paging
	var fields dto.FieldErrors
	var err error
	if pg.Limit, err = strconv.Atoi(q.Limit); err != nil {
		fields = fields.Add("limit", msgInteger)
	}
	if pg.Page, err = strconv.Atoi(q.Page); err != nil {
		fields = fields.Add("page", msgInteger)
	}
	if fields != nil {
		return listParams{}, fields
	}
	if err := binding.Validator.ValidateStruct(&pg); err != nil {
		return listParams{}, fieldErrors(err)
	}

	p := listParams{page: pg.Page, limit: pg.Limit}
	if q.StartDate != "" {
		d, _ := time.Parse(models.DateLayout, q.StartDate)
		p.filter.StartDate = &d
	}
	if q.EndDate != "" {
		d, _ := time.Parse(models.DateLayout, q.EndDate)
		p.filter.EndDate = &d
	}
	if q.Symbol != "" {
		s := q.Symbol
		p.filter.Symbol = &s
	}
	return p, nil
}

func bindStatistics(c *gin.Context) (statisticsParams, dto.FieldErrors) {
	var q statisticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return statisticsParams{}, fieldErrors(err)
	}
	start, _ := time.Parse(models.DateLayout, q.StartDate)
	end, _ := time.Parse(models.DateLayout, q.EndDate)
	return statisticsParams{start: start, end: end, symbol: q.Symbol}, nil
}

const (
	msgRequired = "Field required"
	msgInteger  = "Input should be a valid integer"
	msgDate     = "Input should be a valid date in YYYY-MM-DD format"
)

// fieldErrors converts a binding error to the dotted-path error map.
func fieldErrors(err error) dto.FieldErrors {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return dto.FieldErrors{"query": {err.Error()}}
	}
	var out dto.FieldErrors
	for _, fe := range ves {
		out = out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "number", "numeric":
		return msgInteger
	case "datetime":
		return msgDate
	case "min":
		return "Input should be greater than or equal to " + fe.Param()
	default:
		return fe.Error()
	}
}
