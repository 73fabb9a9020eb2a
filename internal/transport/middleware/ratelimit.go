package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	buckets sync.Map // map[string]*bucket
	stop    chan struct{}
	now     func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing perMinute requests per client IP
// with the given burst, and starts background cleanup of idle clients.
// Call Stop() on shutdown.
func NewRateLimiter(perMinute, burst int, cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
		stop:  make(chan struct{}),
		now:   time.Now,
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit rejects requests above the client's rate with 429 and a Retry-After
// header in whole seconds.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := rl.getBucket(clientIP(r))

		now := rl.now()
		b.mu.Lock()
		b.lastSeen = now
		b.mu.Unlock()

		res := b.limiter.ReserveN(now, 1)
		if delay := res.DelayFrom(now); delay > 0 {
			res.CancelAt(now)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) getBucket(key string) *bucket {
	if val, ok := rl.buckets.Load(key); ok {
		return val.(*bucket)
	}
	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		limiter:  rate.NewLimiter(rl.limit, rl.burst),
		lastSeen: rl.now(),
	})
	return val.(*bucket)
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(rl.now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		idle := now.Sub(b.lastSeen)
		b.mu.Unlock()
		if idle > limiterIdleTTL {
			rl.buckets.Delete(key)
		}
		return true
	})
}

// clientIP returns the host part of RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
