package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	sharedConfig "github.com/ecoride/helpdesk/internal/shared/config"
	"github.com/ecoride/helpdesk/internal/shared/logger"
	"github.com/ecoride/helpdesk/internal/shared/utils"
)

// RateLimit enforces a fixed-window request limit per client using redis.
// Authenticated requests are keyed by user ID, anonymous ones by client IP.
// Redis outages fail open: limiting is a protection, not a dependency.
func RateLimit(client *redis.Client, cfg sharedConfig.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		if !cfg.Enabled || client == nil {
			c.Next()
			return
		}

		key := rateLimitKey(c, window)
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		remaining := int64(cfg.Requests) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(cfg.Requests) {
			c.Header("Retry-After", strconv.Itoa(cfg.WindowSeconds))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context, window time.Duration) string {
	subject := c.ClientIP()
	if userID, ok := c.Get("user_id"); ok {
		subject = fmt.Sprintf("user:%v", userID)
	}
	bucket := time.Now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("helpdesk:ratelimit:%s:%d", subject, bucket)
}
