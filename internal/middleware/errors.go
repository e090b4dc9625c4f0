package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/putpricer/internal/domain/dto"
	"github.com/guttosm/putpricer/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON ErrorResponse
// when the handler did not write a response itself.
//
// The last attached error wins. A status of 400 or above set before the
// error is kept, anything lower becomes 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()

	lg := logger.Component("http")
	lg.Error().
		Str("request_id", c.GetString(RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Err(last.Err).
		Msg("request error")

	if c.Writer.Written() {
		return
	}
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
