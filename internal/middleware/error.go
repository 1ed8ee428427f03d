package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/internal/backend"
	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/logger"
)

// ErrorHandler renders the last error attached to the gin context as a
// dto.ErrorResponse, unless a handler already wrote a response.
//
// Status mapping:
//   - *backend.APIError, *backend.DecodeError: 502 Bad Gateway
//   - context.DeadlineExceeded: 504 Gateway Timeout
//   - anything else: 500 Internal Server Error
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status, message := classify(err)

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

func classify(err error) (int, string) {
	var apiErr *backend.APIError
	var decErr *backend.DecodeError
	switch {
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "statistics backend returned an error"
	case errors.As(err, &decErr):
		return http.StatusBadGateway, "statistics backend returned an unexpected response"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "statistics backend timed out"
	default:
		return http.StatusInternalServerError, "failed to load page"
	}
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	resp := dto.NewErrorResponse(message, err)
	_ = c.Error(resp)
	c.AbortWithStatusJSON(status, resp)
}
