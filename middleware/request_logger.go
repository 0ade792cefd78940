package middleware

import (
	"nimtoz/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLoggerMiddleware attaches a request-scoped logger carrying a request
// id, method and path so handlers can log with correlation fields.
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger().With(
			zap.String("requestId", uuid.NewString()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)
		c.Set("logger", logger)
		c.Next()
	}
}
