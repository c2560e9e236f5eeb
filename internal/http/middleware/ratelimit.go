package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"rps_game/internal/metrics"

	"github.com/gin-gonic/gin"
)

type clientInfo struct {
	start time.Time
	count int
}

// localLimiter is a fixed-window counter table. Expired windows are swept
// at most once per window so idle keys do not accumulate.
type localLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientInfo
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLocalLimiter(window time.Duration) *localLimiter {
	return &localLimiter{
		clients:   make(map[string]*clientInfo),
		window:    window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// hit counts one request for key and returns the count in its current window.
func (l *localLimiter) hit(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.window {
		for k, ci := range l.clients {
			if now.Sub(ci.start) > l.window {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	ci, ok := l.clients[key]
	if !ok || now.Sub(ci.start) > l.window {
		ci = &clientInfo{start: now}
		l.clients[key] = ci
	}
	ci.count++
	return ci.count
}

func (l *localLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// SimpleRateLimit is the in-process fixed-window limiter used when Redis is
// not configured. Each call gets its own window table.
func SimpleRateLimit(prefix string, maxRequests int, window time.Duration, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return simpleRateLimit(newLocalLimiter(window), prefix, maxRequests, keyFn)
}

func simpleRateLimit(l *localLimiter, prefix string, maxRequests int, keyFn func(*gin.Context) string) gin.HandlerFunc {
	window := l.window
	return func(c *gin.Context) {
		count := l.hit(keyFn(c))

		if count > maxRequests {
			metrics.RLBlocked.WithLabelValues(prefix + ":" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		metrics.RLRequests.WithLabelValues(prefix + ":" + c.FullPath()).Inc()
		c.Next()
	}
}

// RateLimit uses Redis when it is configured and the in-memory window otherwise.
func RateLimit(prefix string, maxRequests int, window time.Duration, keyFn func(*gin.Context) string) gin.HandlerFunc {
	redisRL := RedisRateLimit(prefix, maxRequests, window, keyFn)
	localRL := SimpleRateLimit(prefix, maxRequests, window, keyFn)
	return func(c *gin.Context) {
		if redisClient != nil {
			redisRL(c)
			return
		}
		localRL(c)
	}
}

// ByIP keys limits on the client address.
func ByIP(c *gin.Context) string {
	return c.ClientIP()
}

// BySession keys limits on the authenticated session, falling back to the IP.
func BySession(c *gin.Context) string {
	if id := c.GetString(SessionIDKey); id != "" {
		return id
	}
	return c.ClientIP()
}
