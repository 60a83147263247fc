package middleware

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/chooselife/strongfoundations/pkg/logger"
	"github.com/chooselife/strongfoundations/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter per client IP kept in Redis.
type RateLimiter struct {
	redisClient *redis.Client
	metrics     *metrics.Metrics
	log         *logger.Logger
}

func NewRateLimiter(client *redis.Client, m *metrics.Metrics, log *logger.Logger) *RateLimiter {
	return &RateLimiter{redisClient: client, metrics: m, log: log}
}

func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, c.ClientIP())

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			// an unavailable limiter must not lock people out
			rl.log.Warn("rate limiter unavailable", "route", keySuffix, "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.redisClient.TTL(ctx, key).Result()
			rl.metrics.RateLimited.WithLabelValues(keySuffix).Inc()
			c.Header("Retry-After", fmt.Sprintf("%d", int(math.Ceil(ttl.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%.0f seconds", math.Ceil(ttl.Seconds())),
			})
			return
		}
		c.Next()
	}
}
