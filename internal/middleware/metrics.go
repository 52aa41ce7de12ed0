package middleware

import (
	"strconv"

	"github.com/haierkeys/light-notes-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics counts handled requests by method and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
