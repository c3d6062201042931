package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a handler panic into a 500 and records it for RequestLogger.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString("request_id")),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)
			c.Set("error", fmt.Sprint(rec))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				ginext.H{"error": "internal server error"},
			)
		}()

		c.Next()
	}
}
