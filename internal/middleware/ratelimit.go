package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// counterStore counts hits per key within a fixed window.
type counterStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

type RateLimiter struct {
	store  counterStore
	limit  int
	window time.Duration
	logger *zap.Logger
	stop   func()
}

// NewRateLimiter keeps counters in process memory. Call Stop to end the
// background cleanup.
func NewRateLimiter(limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	store := newMemoryStore(window)
	return &RateLimiter{
		store:  store,
		limit:  limit,
		window: window,
		logger: orNop(logger),
		stop:   store.Stop,
	}
}

// NewRedisRateLimiter shares counters between instances through Redis.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		store:  &redisStore{client: client, prefix: "ratelimit:"},
		limit:  limit,
		window: window,
		logger: orNop(logger),
	}
}

// Stop releases background resources. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	if rl.stop != nil {
		rl.stop()
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		count, err := rl.store.Increment(r.Context(), ip, rl.window)
		if err != nil {
			// Counter backend down: let the request through
			rl.logger.Warn("rate limit store unavailable", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(rl.limit) {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(rl.window.Seconds())))
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.", r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

type visitor struct {
	count       int64
	windowStart time.Time
}

type memoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	done     chan struct{}
	stopOnce sync.Once
}

func newMemoryStore(window time.Duration) *memoryStore {
	s := &memoryStore{
		visitors: make(map[string]*visitor),
		done:     make(chan struct{}),
	}

	// Cleanup goroutine
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.evictExpired(window)
			case <-s.done:
				return
			}
		}
	}()

	return s
}

func (s *memoryStore) evictExpired(window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ip, v := range s.visitors {
		if time.Since(v.windowStart) > window {
			delete(s.visitors, ip)
		}
	}
}

func (s *memoryStore) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *memoryStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[key]
	if !exists || time.Since(v.windowStart) > window {
		s.visitors[key] = &visitor{count: 1, windowStart: time.Now()}
		return 1, nil
	}

	v.count++
	return v.count, nil
}

type redisStore struct {
	client *redis.Client
	prefix string
}

// incrWithExpiry bumps the counter and sets its TTL in one atomic step. A
// counter left without a TTL gets one on its next hit.
var incrWithExpiry = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

func (s *redisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := incrWithExpiry.Run(ctx, s.client, []string{s.prefix + key}, window.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to increment rate counter: %w", err)
	}
	return count, nil
}
