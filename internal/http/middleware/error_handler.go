package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"hungryman.com/server/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler turns errors pushed via Fail into JSON responses. Handlers
// whose wire contract fixes the exact body respond directly and never reach
// this; what lands here is panics and other unhandled failures.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperr.HTTPStatus(err)
		rid := GetRequestID(c)

		l.LogAttrs(c.Request.Context(), slog.LevelError, "request_failed",
			slog.String("request_id", rid),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		c.AbortWithStatusJSON(status, gin.H{
			"error":      apperr.PublicMessage(err),
			"request_id": rid,
		})
	}
}
