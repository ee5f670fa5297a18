package cache

import (
	"context"
	"sync"
	"time"

	"columbus/config"
	"columbus/internal/domain/constants"
	"columbus/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = time.Minute
	visitorIdleTimeout = 10 * time.Minute
)

// NewRateLimiter picks the Redis fixed window or the per-process token bucket.
func NewRateLimiter(cfg *config.Config, r *Redis) service.RateLimiter {
	limit := cfg.RateLimit.RequestsPerMinute
	burst := cfg.RateLimit.Burst

	if cfg.RateLimit.Store == constants.RateLimitStoreRedis {
		return newRedisRateLimiter(r, limit, burst)
	}

	return newMemoryRateLimiter(limit, burst)
}

type redisRateLimiter struct {
	kv    kvClient
	limit int64
}

func newRedisRateLimiter(kv kvClient, requestsPerMinute, burst int) *redisRateLimiter {
	return &redisRateLimiter{kv: kv, limit: int64(requestsPerMinute + burst)}
}

// Allow counts the request in a one-minute window that starts with the first hit.
func (l *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.kv.IncrWithExpire(ctx, rateLimitKeyPrefix+key, rateLimitWindow)
	if err != nil {
		return true, errors.Wrap(err, "failed to count request")
	}

	return count <= l.limit, nil
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newMemoryRateLimiter(requestsPerMinute, burst int) *memoryRateLimiter {
	return &memoryRateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     rate.Every(rateLimitWindow / time.Duration(requestsPerMinute)),
		burst:     max(requestsPerMinute+burst, 1),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > visitorIdleTimeout {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTimeout {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1), nil
}
