package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const rateLimitWindow = time.Minute

// RateLimit enforces a fixed-window per-client request cap on the named
// route. A zero limit or a missing Redis client disables it; Redis failures
// fail open so an outage never blocks link resolution.
func (m Middleware) RateLimit(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if m.config != nil {
			limit = m.config.Report.ResolveRateLimit
		}
		if limit <= 0 || m.redis == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s:%d", name, c.ClientIP(), time.Now().Unix()/int64(rateLimitWindow.Seconds()))

		count, err := m.redis.Incr(ctx, key)
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: Incr failed, allowing request: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := m.redis.Expire(ctx, key, rateLimitWindow); err != nil {
				m.l.Warnf(ctx, "middleware.RateLimit: Expire failed: %v", err)
			}
		}

		if count > int64(limit) {
			c.String(http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}

		c.Next()
	}
}
