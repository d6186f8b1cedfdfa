package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window request budget per caller and
// path, counted in redis. Unauthenticated callers are keyed by client IP.
// Limit and window come from RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW_SECONDS.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetString("user_id")
		if caller == "" {
			caller = c.ClientIP()
		}
		key := fmt.Sprintf("ratelimit:%s:%s", caller, c.Request.URL.Path)

		ctx := c.Request.Context()
		pipe := redisClient.TxPipeline()
		count := pipe.Incr(ctx, key)
		// NX keeps the window anchored at the first request of the period.
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count.Val() > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
