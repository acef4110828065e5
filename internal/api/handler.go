package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/findata/internal/domain/dto"
	"github.com/guttosm/findata/internal/middleware"
	"github.com/guttosm/findata/internal/service"
)

// Handler provides HTTP handlers for the financial data endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters (422 with a field map on failure)
//   - Call the service layer with the request context
//   - Translate results into the response envelope
type Handler struct {
	svc service.FinancialService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.FinancialService) *Handler {
	registerFieldNames()
	return &Handler{svc: svc}
}

// ListFinancialData handles GET /financial_data/.
//
// ListFinancialData godoc
// @Summary      List financial data
// @Description  Returns stored daily records filtered by optional date range and symbol, ordered by date then symbol, paginated
// @Tags         financial_data
// @Produce      json
// @Param        start_date  query     string  false  "Inclusive start date (YYYY-MM-DD)" example(2023-01-01)
// @Param        end_date    query     string  false  "Inclusive end date (YYYY-MM-DD)" example(2023-01-31)
// @Param        symbol      query     string  false  "Ticker symbol" example(IBM)
// @Param        limit       query     int     false  "Page size" default(5) minimum(1)
// @Param        page        query     int     false  "Page number" default(1) minimum(1)
// @Success      200         {object}  dto.FinancialDataResponse  "Success"
// @Failure      422         {object}  dto.FinancialDataResponse  "Validation error"
// @Failure      500         {object}  dto.FinancialDataResponse  "Internal Error"
// @Router       /financial_data/ [get]
func (h *Handler) ListFinancialData(c *gin.Context) {
	params, fields := bindList(c)
	if fields != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewInvalidFinancialDataResponse(fields))
		return
	}

	page, err := h.svc.ListRecords(c.Request.Context(), params.filter, params.page, params.limit)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to list financial data", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFinancialDataResponse(page))
}

// GetStatistics handles GET /statistics/.
//
// GetStatistics godoc
// @Summary      Average daily statistics
// @Description  Returns the mean open price, close price and volume of a symbol over an inclusive date range
// @Tags         statistics
// @Produce      json
// @Param        start_date  query     string  true  "Inclusive start date (YYYY-MM-DD)" example(2023-01-01)
// @Param        end_date    query     string  true  "Inclusive end date (YYYY-MM-DD)" example(2023-01-31)
// @Param        symbol      query     string  true  "Ticker symbol" example(IBM)
// @Success      200         {object}  dto.StatisticsResponse  "Success, or data null when nothing matched"
// @Failure      422         {object}  dto.StatisticsResponse  "Validation error"
// @Failure      500         {object}  dto.ErrorResponse       "Internal Error"
// @Router       /statistics/ [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	params, fields := bindStatistics(c)
	if fields != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewInvalidStatisticsResponse(fields))
		return
	}

	stats, err := h.svc.GetStatistics(c.Request.Context(), params.start, params.end, params.symbol)
	if errors.Is(err, service.ErrNoFinancialData) {
		c.JSON(http.StatusOK, dto.NewEmptyStatisticsResponse(service.NoFinancialDataMessage))
		return
	}
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute statistics", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatisticsResponse(stats))
}
