package ratelimit_test

import (
	"testing"
	"time"

	"github.com/TaskGlass/dreamvault/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
)

func newClockedLimiter(start time.Time) (*ratelimit.Limiter, *time.Time) {
	now := start
	limiter := ratelimit.NewLimiter(&ratelimit.Opts{
		TimeProvider: func() time.Time { return now },
	})
	return limiter, &now
}

func TestAllow_ExactlyLimitRequestsPerWindow(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Now())

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("dream_interpretation:user-1", 5, time.Minute), "request %d", i+1)
	}
	assert.False(t, limiter.Allow("dream_interpretation:user-1", 5, time.Minute))
}

func TestAllow_FreshWindowAlwaysSucceeds(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Now())

	// Even a zero limit admits the request that opens the window.
	assert.True(t, limiter.Allow("blocked:user-1", 0, time.Minute))
	assert.False(t, limiter.Allow("blocked:user-1", 0, time.Minute))
}

func TestAllow_WindowExpiryResetsCount(t *testing.T) {
	limiter, now := newClockedLimiter(time.Now())

	for i := 0; i < 3; i++ {
		limiter.Allow("k", 3, time.Minute)
	}
	assert.False(t, limiter.Allow("k", 3, time.Minute))

	*now = now.Add(time.Minute + time.Second)

	assert.True(t, limiter.Allow("k", 3, time.Minute))
	headers := limiter.HeadersFor("k", 3, time.Minute)
	assert.Equal(t, 2, headers.Remaining)
}

func TestHeadersFor_DoesNotMutateState(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Now())

	limiter.Allow("k", 2, time.Minute)

	for i := 0; i < 10; i++ {
		limiter.HeadersFor("k", 2, time.Minute)
	}

	// One slot was consumed; the headers calls must not have consumed more.
	assert.True(t, limiter.Allow("k", 2, time.Minute))
	assert.False(t, limiter.Allow("k", 2, time.Minute))
}

func TestHeadersFor_ExpiredWindowReportsFullAllowance(t *testing.T) {
	start := time.Now()
	limiter, now := newClockedLimiter(start)

	limiter.Allow("k", 5, time.Minute)
	limiter.Allow("k", 5, time.Minute)

	*now = now.Add(2 * time.Minute)

	headers := limiter.HeadersFor("k", 5, time.Minute)
	assert.Equal(t, 5, headers.Limit)
	assert.Equal(t, 5, headers.Remaining)
	assert.Equal(t, now.Add(time.Minute), headers.Reset)

	// The read must not have opened a window: the next Allow opens it fresh.
	assert.True(t, limiter.Allow("k", 5, time.Minute))
	assert.Equal(t, 4, limiter.HeadersFor("k", 5, time.Minute).Remaining)
}

func TestHeadersFor_ActiveWindow(t *testing.T) {
	start := time.Now()
	limiter, _ := newClockedLimiter(start)

	limiter.Allow("k", 3, time.Minute)

	headers := limiter.HeadersFor("k", 3, time.Minute)
	assert.Equal(t, 3, headers.Limit)
	assert.Equal(t, 2, headers.Remaining)
	assert.Equal(t, start.Add(time.Minute), headers.Reset)
}

func TestSweep_RemovesOnlyExpiredRecords(t *testing.T) {
	limiter, now := newClockedLimiter(time.Now())

	limiter.Allow("short", 5, time.Minute)
	limiter.Allow("long", 5, time.Hour)
	assert.Equal(t, 2, limiter.Len())

	*now = now.Add(5 * time.Minute)
	limiter.Sweep()

	assert.Equal(t, 1, limiter.Len())

	// The surviving window still counts against its original state.
	headers := limiter.HeadersFor("long", 5, time.Hour)
	assert.Equal(t, 4, headers.Remaining)
}

func TestAllow_IndependentIdentifiers(t *testing.T) {
	limiter, _ := newClockedLimiter(time.Now())

	assert.True(t, limiter.Allow("feature:a", 1, time.Minute))
	assert.False(t, limiter.Allow("feature:a", 1, time.Minute))
	assert.True(t, limiter.Allow("feature:b", 1, time.Minute))
}
