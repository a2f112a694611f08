package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)

	assert.True(t, rl.Allow("1"))
	assert.True(t, rl.Allow("1"))
	assert.False(t, rl.Allow("1"))
	assert.True(t, rl.Allow("2"))
}

func TestRateLimiter_EvictsIdleKeys(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(0.001, 1)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("idle"))
	assert.True(t, rl.Allow("active"))
	assert.Equal(t, 2, rl.Len())

	now = now.Add(limiterIdleTTL / 2)
	assert.False(t, rl.Allow("active"))

	now = now.Add(limiterIdleTTL / 2)
	assert.False(t, rl.Allow("active"))
	assert.Equal(t, 1, rl.Len(), "idle key should be evicted")

	// An evicted key starts with a fresh bucket.
	assert.True(t, rl.Allow("idle"))
	assert.Equal(t, 2, rl.Len())
}
