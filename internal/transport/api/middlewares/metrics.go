package middlewares

import (
	"github.com/fsdevblog/ecoledger/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics считает запросы по шаблону маршрута, методу и статусу ответа.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(route, c.Request.Method, c.Writer.Status())
	}
}
