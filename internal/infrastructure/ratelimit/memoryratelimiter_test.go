package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter_AllowWithinLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	cfg := Config{Limit: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow("203.0.113.7", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestMemoryRateLimiter_RejectsOverLimit(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	cfg := Config{Limit: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow("203.0.113.7", cfg)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit must be rejected")
}

func TestMemoryRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	cfg := Config{Limit: 1, Window: time.Minute}

	allowed, err := limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	require.False(t, allowed)

	// A different client IP is unaffected by the exhausted one.
	allowed, err = limiter.Allow("198.51.100.23", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_WindowExpiry(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	current := time.Now()
	limiter.now = func() time.Time { return current }

	cfg := Config{Limit: 2, Window: time.Minute}

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow("203.0.113.7", cfg)
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	require.False(t, allowed)

	// Advance past the window; the counter must have slid off.
	current = current.Add(cfg.Window + time.Second)

	allowed, err = limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	cfg := Config{Limit: 1, Window: time.Minute}

	allowed, err := limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	require.True(t, allowed)

	require.NoError(t, limiter.Reset("203.0.113.7"))

	allowed, err = limiter.Allow("203.0.113.7", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryRateLimiter_ManyKeys(t *testing.T) {
	limiter := NewMemoryRateLimiter()
	cfg := Config{Limit: 1, Window: time.Minute}

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("10.0.0.%d", i)
		allowed, err := limiter.Allow(key, cfg)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
