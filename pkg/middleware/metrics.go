package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elve-agency/backend/pkg/metrics"
)

// RequestMetrics counts every request by method and response status.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
