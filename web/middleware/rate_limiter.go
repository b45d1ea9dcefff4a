package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	RequestsPerMinute int // Max prediction requests per client per minute
	BurstSize         int // Allow burst of N requests
}

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	// Refill tokens based on elapsed time
	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Remaining returns the number of tokens remaining
func (tb *TokenBucket) Remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tokens := min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	return int(tokens)
}

// ClientRateLimiter manages rate limits per client IP
type ClientRateLimiter struct {
	config  RateLimiterConfig
	buckets map[string]*TokenBucket
	mu      sync.Mutex
	logger  *zap.Logger
}

// NewClientRateLimiter creates a new per-client rate limiter
func NewClientRateLimiter(config RateLimiterConfig, logger *zap.Logger) *ClientRateLimiter {
	return &ClientRateLimiter{
		config:  config,
		buckets: make(map[string]*TokenBucket),
		logger:  logger,
	}
}

// Allow checks if a request from the given client can proceed
func (rl *ClientRateLimiter) Allow(clientIP string) (allowed bool, remaining int) {
	rl.mu.Lock()
	bucket, exists := rl.buckets[clientIP]
	if !exists {
		refillRate := float64(rl.config.RequestsPerMinute) / 60.0
		bucket = NewTokenBucket(float64(rl.config.BurstSize), refillRate)
		rl.buckets[clientIP] = bucket
	}
	// Clients churn; cap the map rather than tracking last access per entry.
	if len(rl.buckets) > 10000 {
		rl.logger.Info("Cleaning up rate limiter cache", zap.Int("buckets", len(rl.buckets)))
		rl.buckets = map[string]*TokenBucket{clientIP: bucket}
	}
	rl.mu.Unlock()

	return bucket.Allow(), bucket.Remaining()
}

// RateLimit creates a Gin middleware enforcing the per-client limit
func RateLimit(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := limiter.Allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.config.BurstSize))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			limiter.logger.Warn("Rate limit exceeded",
				zap.String("client_ip", c.ClientIP()),
				zap.Int("limit", limiter.config.RequestsPerMinute))

			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": 60,
			})
			return
		}

		c.Next()
	}
}
