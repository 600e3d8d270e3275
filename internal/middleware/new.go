package middleware

import (
	"event-calendar-webhook/pkg/log"
)

// Config holds webhook protection settings.
type Config struct {
	RateLimitPerMin int      // 0 disables rate limiting
	AllowedIPs      []string // IPs or CIDRs; empty allows everyone
}

type Middleware struct {
	l           log.Logger
	allowedIPs  []string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		allowedIPs: cfg.AllowedIPs,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
