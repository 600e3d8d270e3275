package middleware

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"event-calendar-webhook/pkg/response"
)

const (
	maxSources = 1000
	sourceTTL  = 5 * time.Minute
)

// AllowIPs rejects clients outside the configured allow-list with 403.
func (m Middleware) AllowIPs() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.validateIPAddress(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.AllowIPs: %v", err)
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit applies a per-client-IP token bucket and answers 429 when empty.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimiter == nil {
			c.Next()
			return
		}
		if err := m.rateLimiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// validateIPAddress checks ip against exact entries and CIDR ranges.
func (m Middleware) validateIPAddress(ip string) error {
	if len(m.allowedIPs) == 0 {
		return nil
	}

	parsed := net.ParseIP(ip)
	for _, allowedIP := range m.allowedIPs {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("IP %s not whitelisted", ip)
}

// rateLimiter keeps one limiter per source and forgets idle sources.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxSources, nil, sourceTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
