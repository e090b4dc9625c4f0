package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/putpricer/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Level follows the status: 5xx at error, 4xx at warn, everything else at info.
//
// Example log output:
//
//	{"component":"http","request_id":"123e4567-...","method":"POST","path":"/api/v1/options/price","status":200,"latency_ms":3,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		lg := logger.Component("http")
		ev := lg.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = lg.Error()
		case status >= http.StatusBadRequest:
			ev = lg.Warn()
		}
		ev.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Int("bytes_in", int(c.Request.ContentLength)).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// Default limits for RateLimiter. Pricing calls are CPU-bound, so the budget
// is per client IP per window.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 120
	lastSweep       time.Time
	rateLimiterLock sync.Mutex
)

// RateLimiter is a fixed-window, in-memory limiter keyed by client IP.
//
// Behavior:
//   - Allows up to `limit` requests per `window`.
//   - Returns HTTP 429 with a Retry-After header when exceeded.
//   - At most once per window, entries whose window has passed are swept,
//     so IPs that never come back do not accumulate.
//
// NOTE: state is per process; multiple replicas each enforce their own budget.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		if now.Sub(lastSweep) > window {
			sweepClients(now)
		}
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		retryAfter := window - now.Sub(cl.windowStart)
		rateLimiterLock.Unlock()

		if exceeded {
			c.Header("Retry-After", retryAfterSeconds(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

// sweepClients drops expired windows. Callers hold rateLimiterLock.
func sweepClients(now time.Time) {
	for ip, cl := range clients {
		if now.Sub(cl.windowStart) > window {
			delete(clients, ip)
		}
	}
	lastSweep = now
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
