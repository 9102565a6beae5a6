// Package ratelimit provides the per-client request throttle guarding the
// public supplier endpoints. Limiters key on client identity (IP), never on
// token value, so distinct legitimate users are unaffected by each other.
package ratelimit

import "time"

type Config struct {
	// Limit is the maximum number of requests per window.
	Limit int
	// Window is the length of the fixed counting window.
	Window time.Duration
}

type RateLimiter interface {
	// Allow reports whether the request identified by key fits within the
	// configured window. The count is consumed on every call.
	Allow(key string, cfg Config) (bool, error)
	// Reset clears all counters for key.
	Reset(key string) error
}

// PolicyLimiter binds a RateLimiter to one fixed policy so callers only
// supply the client key.
type PolicyLimiter struct {
	limiter RateLimiter
	cfg     Config
}

func NewPolicyLimiter(limiter RateLimiter, cfg Config) *PolicyLimiter {
	return &PolicyLimiter{limiter: limiter, cfg: cfg}
}

func (p *PolicyLimiter) Allow(key string) (bool, error) {
	return p.limiter.Allow(key, p.cfg)
}
