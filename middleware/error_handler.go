package middleware

import (
	"log/slog"

	"bapi/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into the generic server-error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered",
					slog.Any("error", r),
					slog.String("path", c.Request.URL.Path),
				)
				utils.ServerError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
