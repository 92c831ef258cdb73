// Package middleware provides HTTP middleware for the genenet API.
package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// maxBuckets is the maximum number of tracked clients to prevent memory exhaustion.
const maxBuckets = 100_000

// RateLimiter implements a token bucket per client IP. Rates below one
// request per second are supported.
type RateLimiter struct {
	buckets map[string]*bucket
	mu      sync.Mutex
	rate    float64
	burst   float64
	now     func() time.Time
}

// bucket is one client's token bucket.
type bucket struct {
	tokens   float64
	lastFill time.Time
}

// take refills the bucket and consumes one token. When empty it returns the
// wait until the next token.
func (rl *RateLimiter) take(b *bucket, now time.Time) (bool, time.Duration) {
	elapsed := now.Sub(b.lastFill).Seconds()
	b.tokens = math.Min(rl.burst, b.tokens+elapsed*rl.rate)
	b.lastFill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	wait := (1 - b.tokens) / rl.rate

	return false, time.Duration(wait * float64(time.Second))
}

// NewRateLimiter creates a RateLimiter with the given requests per second and burst size.
// It starts a background goroutine to evict stale buckets, which stops when ctx is cancelled.
func NewRateLimiter(ctx context.Context, ratePerSec float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    ratePerSec,
		burst:   float64(burst),
		now:     time.Now,
	}
	go rl.startCleanup(ctx)

	return rl
}

// startCleanup periodically evicts buckets that have refilled completely.
func (rl *RateLimiter) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictFull()
		}
	}
}

func (rl *RateLimiter) evictFull() {
	now := rl.now()
	fullAfter := time.Duration(rl.burst / rl.rate * float64(time.Second))

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if now.Sub(b.lastFill) > fullAfter {
			delete(rl.buckets, ip)
		}
	}
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.buckets)
}

// Handler returns Gin middleware that applies rate limiting per client IP.
// Rejected requests get 429 with a Retry-After header in whole seconds.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ClientIP ignores X-Forwarded-For because the router trusts no proxies.
		ip := c.ClientIP()

		rl.mu.Lock()
		b, ok := rl.buckets[ip]
		if !ok {
			if len(rl.buckets) >= maxBuckets {
				rl.mu.Unlock()
				respondError(c, http.StatusTooManyRequests, "rate_limited", "too many clients")

				return
			}

			b = &bucket{tokens: rl.burst, lastFill: rl.now()}
			rl.buckets[ip] = b
		}

		allowed, wait := rl.take(b, rl.now())
		rl.mu.Unlock()

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			respondError(c, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")

			return
		}

		c.Next()
	}
}
