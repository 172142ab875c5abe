package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	limiterSweepThreshold = 5000
	limiterIdleTTL        = 10 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitGin applies a per client IP token bucket. Idle entries are swept
// once the table grows past limiterSweepThreshold.
func RateLimitGin(rps float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*ipLimiter)
	)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()

		if e, ok := limiters[ip]; ok {
			e.lastSeen = now

			return e.limiter
		}

		if len(limiters) >= limiterSweepThreshold {
			cutoff := now.Add(-limiterIdleTTL)
			for k, v := range limiters {
				if v.lastSeen.Before(cutoff) {
					delete(limiters, k)
				}
			}
		}

		l := rate.NewLimiter(rate.Limit(rps), burst)
		limiters[ip] = &ipLimiter{limiter: l, lastSeen: now}

		return l
	}

	return func(c *gin.Context) {
		if !get(c.ClientIP()).Allow() {
			slog.WarnContext(c.Request.Context(), "rate limit exceeded",
				slog.String("event", "http.ratelimit"),
				slog.String("remote_addr", c.ClientIP()),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "rate limit exceeded",
			})

			return
		}

		c.Next()
	}
}
