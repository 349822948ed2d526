package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

const (
	DefaultLoginAttempts = 5
	DefaultLoginWindow   = time.Minute
)

// attemptCounter counts hits per key in fixed windows and reports how long the current window lasts.
type attemptCounter interface {
	hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiter limits requests per client IP in fixed windows.
type RateLimiter struct {
	counter attemptCounter
	prefix  string
	limit   int64
	window  time.Duration
}

// NewRateLimiter keeps the counters in process memory.
func NewRateLimiter(prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: &memoryCounter{entries: map[string]*memoryEntry{}},
		prefix:  prefix,
		limit:   int64(limit),
		window:  window,
	}
}

// NewRedisRateLimiter shares the counters between API instances through Redis.
func NewRedisRateLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counter: &redisCounter{client: client},
		prefix:  prefix,
		limit:   int64(limit),
		window:  window,
	}
}

// Middleware rejects the request with 429 once the client IP exceeds the limit.
// Counter failures let the request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + rl.prefix + ":" + c.ClientIP()

		count, resetIn, err := rl.counter.hit(c.Request.Context(), key, rl.window)
		if err != nil {
			slog.Warn("Rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if count > rl.limit {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := r.client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if ttl < 0 {
		// key lost its expiry; start a new window
		ttl = window
		if err := r.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
	}
	return count, ttl, nil
}

type memoryEntry struct {
	count   int64
	resetAt time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	entry, ok := m.entries[key]
	if !ok || now.After(entry.resetAt) {
		m.sweep(now)
		entry = &memoryEntry{resetAt: now.Add(window)}
		m.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt.Sub(now), nil
}

// sweep drops expired windows. Called with mu held.
func (m *memoryCounter) sweep(now time.Time) {
	for key, entry := range m.entries {
		if now.After(entry.resetAt) {
			delete(m.entries, key)
		}
	}
}
