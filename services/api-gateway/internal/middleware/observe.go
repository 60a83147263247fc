package middleware

import (
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Observe records request metrics and writes one access log line.
// Routes are labelled by their pattern so slugs do not explode cardinality.
func Observe(m *metrics.Metrics, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		status := c.Writer.Status()
		m.ObserveHTTP(c.Request.Method, route, status, elapsed)

		kv := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency", elapsed,
		}
		if uid := c.GetString(UserIDKey); uid != "" {
			kv = append(kv, "user_id", uid)
		}
		if status >= 500 {
			log.Error("request failed", kv...)
			return
		}
		log.Debug("request", kv...)
	}
}
