package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
)

var now = time.Now

// windowKey names the counter for ip in the fixed window containing t, so a
// counter that lost its expiry only ever covers one window.
func windowKey(name, ip string, window time.Duration, t time.Time) string {
	return store.Key("ratelimit", name, ip, strconv.FormatInt(t.UnixNano()/int64(window), 10))
}

// RateLimit allows max requests per client IP per window for the routes it
// guards. Counters live in the volatile cache; when the cache fails the
// request is let through.
func RateLimit(cache store.VolatileCache, name string, max int, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	retryAfter := strconv.Itoa(int(math.Ceil(window.Seconds())))
	return func(c *gin.Context) {
		if cache == nil || max <= 0 || window <= 0 {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		count, err := cache.Incr(c.Request.Context(), windowKey(name, ip, window, now()), window)
		if err != nil {
			log.Warn("rate limit counter failed", zap.String("limit", name), zap.Error(err))
			c.Next()
			return
		}
		if count > int64(max) {
			c.Header("Retry-After", retryAfter)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
