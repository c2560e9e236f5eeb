package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"rps_game/internal/logger"
	"rps_game/internal/metrics"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedisRateLimiter initializes a shared Redis client used by the middleware.
// If addr is empty or the ping fails, redisClient stays nil and the limiters
// fall back to the in-memory window. Returns whether Redis is in use.
func InitRedisRateLimiter(addr, password string, db int) bool {
	if addr == "" {
		return false
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-memory rate limiter", "addr", addr, "error", err)
		_ = client.Close()
		return false
	}
	redisClient = client
	logger.Info("redis rate limiter enabled", "addr", addr)
	return true
}

// RedisEnabled reports whether a Redis client is configured.
func RedisEnabled() bool {
	return redisClient != nil
}

// PingRedis checks the shared client, for readiness probes.
func PingRedis(ctx context.Context) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Ping(ctx).Err()
}

// CloseRedis releases the shared client.
func CloseRedis() {
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
}

// RedisRateLimit implements a fixed-window rate limiter using Redis INCR/EXPIRE.
// keyFn picks the identity being limited; key format: <prefix>:<window_seconds>:<identity>
func RedisRateLimit(prefix string, maxRequests int, window time.Duration, keyFn func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		key := prefix + ":" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + keyFn(c)
		ctx := c.Request.Context()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// on Redis error, fail-open (allow) but set header
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}

		if val == 1 {
			if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
				// a counter without TTL would block the key forever
				redisClient.Del(ctx, key)
				c.Header("X-RateLimit-Error", "redis-error")
				c.Next()
				return
			}
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(maxRequests)-val), 10))

		if val > int64(maxRequests) {
			metrics.RLBlocked.WithLabelValues(prefix + ":" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		metrics.RLRequests.WithLabelValues(prefix + ":" + c.FullPath()).Inc()
		c.Next()
	}
}
