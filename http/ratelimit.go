package http

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	staleBucketAge  = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type tokenBucket struct {
	remaining  int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. Buckets refill to full capacity
// once per window rather than continuously.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	buckets  map[string]*tokenBucket
	done     chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity: capacity,
		window:   window,
		buckets:  make(map[string]*tokenBucket),
		done:     make(chan struct{}),
	}
	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictStale()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) evictStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for client, bucket := range rl.buckets {
		if now.Sub(bucket.lastRefill) > staleBucketAge {
			delete(rl.buckets, client)
		}
	}
}

// Stop terminates the background eviction goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Allow consumes one token for the client, refilling first when the window
// has elapsed.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	bucket, ok := rl.buckets[client]
	if !ok {
		rl.buckets[client] = &tokenBucket{
			remaining:  rl.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= rl.window {
		bucket.remaining = rl.capacity
		bucket.lastRefill = now
	}

	if bucket.remaining <= 0 {
		return false
	}
	bucket.remaining--
	return true
}

// RateLimitMiddleware rejects requests from clients that exhausted their
// bucket, keyed by remote IP.
func RateLimitMiddleware(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
