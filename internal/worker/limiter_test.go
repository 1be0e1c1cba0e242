package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
)

func TestLimiter_AcquireAndRelease(t *testing.T) {
	l := NewLimiter(&config.LimiterConfig{RequestsPerSecond: 1000, Burst: 10, MaxConcurrent: 2})

	release1, err := l.Acquire(context.Background())
	require.NoError(t, err)
	release2, err := l.Acquire(context.Background())
	require.NoError(t, err)

	// Both slots taken; a third acquire must block until one is released.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release1()
	release3, err := l.Acquire(context.Background())
	require.NoError(t, err)

	release2()
	release3()
}

func TestLimiter_RespectsContextWhileRateLimited(t *testing.T) {
	// One token per minute with burst 1: the second acquire waits on the
	// bucket, not the semaphore.
	l := NewLimiter(&config.LimiterConfig{RequestsPerSecond: 1.0 / 60, Burst: 1, MaxConcurrent: 4})

	release, err := l.Acquire(context.Background())
	require.NoError(t, err)
	release()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	require.Error(t, err)

	// The semaphore slot taken during the failed acquire must have been
	// returned; otherwise slots leak one per rate-limited call.
	for i := 0; i < 4; i++ {
		select {
		case l.sem <- struct{}{}:
		default:
			t.Fatalf("semaphore slot %d leaked", i)
		}
	}
}

func TestNewLimiter_Floors(t *testing.T) {
	l := NewLimiter(&config.LimiterConfig{})
	require.NotNil(t, l)
	assert.Equal(t, 8, cap(l.sem))
}
