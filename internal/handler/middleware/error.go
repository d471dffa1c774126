package middleware

import (
	"log/slog"
	"net/http"

	"storefront-cart/internal/handler/httperr"
	"storefront-cart/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 5

// ErrorHandler logs what handlers recorded with httperr.AbortWithError and
// fills in a response when a handler left none.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			logHandlerError(c, ginErr)
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error"))
	}
}

func logHandlerError(c *gin.Context, ginErr *gin.Error) {
	status := http.StatusInternalServerError
	if resp, ok := ginErr.Meta.(httperr.Response); ok {
		status = resp.Status
	}

	attrs := []any{
		slog.String("request_id", GetRequestID(c)),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", status),
		slog.String("error", ginErr.Err.Error()),
	}
	if status >= http.StatusInternalServerError {
		attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(ginErr.Err, stackLinesLogged)))
		slog.Error("Request failed", attrs...)
		return
	}
	slog.Debug("Request rejected", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
