package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	// pin the clock so every call lands in one window
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }
	return limiter, mr
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newLimiter(t, 2)

	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.True(t, limiter.Allow(ctx, "10.0.0.1"))
	assert.False(t, limiter.Allow(ctx, "10.0.0.1"))

	// keys are counted separately
	assert.True(t, limiter.Allow(ctx, "10.0.0.2"))
}

func TestFixedWindowLimiter_NextWindow(t *testing.T) {
	ctx := context.Background()
	limiter, _ := newLimiter(t, 1)

	assert.True(t, limiter.Allow(ctx, "ip"))
	assert.False(t, limiter.Allow(ctx, "ip"))

	next := time.Date(2024, 6, 1, 12, 1, 0, 0, time.UTC)
	limiter.now = func() time.Time { return next }
	assert.True(t, limiter.Allow(ctx, "ip"))
}

func TestFixedWindowLimiter_FailClosed(t *testing.T) {
	limiter, mr := newLimiter(t, 5)
	mr.Close()

	assert.False(t, limiter.Allow(context.Background(), "ip"))
}

func TestNewFixedWindowLimiter_Validation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	tests := []struct {
		name   string
		client *redis.Client
		limit  int
		window time.Duration
	}{
		{"nil client", nil, 1, time.Second},
		{"zero limit", client, 0, time.Second},
		{"zero window", client, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := NewFixedWindowLimiter(tt.client, "", tt.limit, tt.window)
			assert.Error(t, err)
			assert.Nil(t, limiter)
		})
	}
}
