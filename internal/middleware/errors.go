package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/findata/internal/domain/dto"
	"github.com/guttosm/findata/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into the response envelope
// when the handler did not write a body itself.
//
// The status is kept if a handler already set a 4xx/5xx one; otherwise 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, errorBody(c, "Internal server error", last.Err))
}

// AbortWithError records err on the context and aborts with the envelope
// carrying "message: err" in info.error.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorBody(c, message, err))
}

const errorBodyKey = "error_body"

// ErrorBody makes error responses on the route it guards render through
// render instead of the generic {data: null, info} envelope. render receives
// the final "message: err" text.
//
// Example:
//
//	router.GET("/financial_data", middleware.ErrorBody(func(msg string) any {
//	    return dto.NewFinancialDataErrorResponse(msg)
//	}), handler.ListFinancialData)
func ErrorBody(render func(message string) any) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(errorBodyKey, render)
		c.Next()
	}
}

// errorBody builds the error response for c, honoring a route's ErrorBody.
func errorBody(c *gin.Context, message string, err error) any {
	resp := dto.NewErrorResponse(message, err)
	if v, ok := c.Get(errorBodyKey); ok {
		if render, ok := v.(func(string) any); ok {
			return render(resp.Error())
		}
	}
	return resp
}
