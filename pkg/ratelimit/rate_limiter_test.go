package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowLimiter_Allow(t *testing.T) {
	limiter := NewSlidingWindowLimiter(3, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i)
	}

	allowed, err := limiter.Allow(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Keys are independent.
	allowed, err = limiter.Allow(ctx, "client-b")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_WindowExpiry(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, 30*time.Millisecond)
	ctx := context.Background()

	allowed, _ := limiter.Allow(ctx, "k")
	require.True(t, allowed)
	allowed, _ = limiter.Allow(ctx, "k")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = limiter.Allow(ctx, "k")
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_Reset(t *testing.T) {
	limiter := NewSlidingWindowLimiter(1, time.Hour)
	ctx := context.Background()

	limiter.Allow(ctx, "k")
	allowed, _ := limiter.Allow(ctx, "k")
	require.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))
	allowed, _ = limiter.Allow(ctx, "k")
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_Accessors(t *testing.T) {
	limiter := NewSlidingWindowLimiter(30, time.Hour)
	assert.Equal(t, 30, limiter.Limit())
	assert.Equal(t, time.Hour, limiter.Window())
}
