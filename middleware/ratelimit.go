package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-client token bucket. Each client starts with capacity
// tokens and regains capacity tokens per window.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	window   time.Duration
	capacity int
	now      func() time.Time
}

func NewRateLimiter(window time.Duration, capacity int) *RateLimiter {
	if window <= 0 {
		window = 10 * time.Second
	}
	return &RateLimiter{
		buckets:  map[string]*bucket{},
		window:   window,
		capacity: capacity,
		now:      time.Now,
	}
}

func clientIP(c *gin.Context) string {
	ip := strings.TrimSpace(c.ClientIP())
	if ip == "" {
		host, _, _ := net.SplitHostPort(strings.TrimSpace(c.Request.RemoteAddr))
		ip = host
	}
	return ip
}

// Allow takes one token from key's bucket.
func (l *RateLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key]
	if b == nil {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[key] = b
	}
	if elapsed := now.Sub(b.lastRefill); elapsed > 0 {
		add := int(float64(l.capacity) * (float64(elapsed) / float64(l.window)))
		if add > 0 {
			b.tokens = min(b.tokens+add, l.capacity)
			b.lastRefill = now
		}
	}
	if len(l.buckets) > 1024 {
		l.sweepNoLock(now)
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// sweepNoLock drops buckets that would be full again by now.
func (l *RateLimiter) sweepNoLock(now time.Time) {
	for k, b := range l.buckets {
		if now.Sub(b.lastRefill) >= l.window {
			delete(l.buckets, k)
		}
	}
}

// Handler rejects over-limit clients with 429. A limiter with capacity 0 or
// less lets everything through.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.capacity <= 0 {
			c.Next()
			return
		}
		if !l.Allow(clientIP(c)) {
			c.Header("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, please slow down"})
			return
		}
		c.Next()
	}
}
