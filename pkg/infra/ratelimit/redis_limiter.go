// Package ratelimit holds the redis-backed sliding-window limiter for
// deployments where the in-process limiter's per-instance view is not
// acceptable. Every instance shares the same counters, at the cost of a
// redis round trip per check.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type RedisLimiter struct {
	redis        *redis.Client
	timeProvider func() time.Time
	uuidProvider func() uuid.UUID
}

type Opts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
}

func NewRedisLimiter(redisClient *redis.Client, opts *Opts) *RedisLimiter {
	timeProvider := time.Now
	uuidProvider := uuid.New
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	if opts != nil && opts.UuidProvider != nil {
		uuidProvider = opts.UuidProvider
	}
	return &RedisLimiter{
		redis:        redisClient,
		timeProvider: timeProvider,
		uuidProvider: uuidProvider,
	}
}

// Allow counts the request against a sliding window over the last window
// duration and reports how many slots stay free afterwards. Unlike the
// in-process fixed-window limiter it returns an error on redis failure;
// callers decide whether to fail open or closed.
func (l *RedisLimiter) Allow(ctx context.Context, identifier string, limit int, window time.Duration) (bool, int, error) {
	key := fmt.Sprintf("ratelimit:%s", identifier)
	now := l.timeProvider()
	windowStart := now.Add(-window).Unix()

	currentCount, err := l.redis.ZCount(ctx, key,
		strconv.FormatInt(windowStart, 10),
		strconv.FormatInt(now.Unix(), 10)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to get count for %s: %w", identifier, err)
	}

	if currentCount >= int64(limit) {
		return false, 0, nil
	}

	requestID := fmt.Sprintf("%d:%s", now.Unix(), l.uuidProvider().String())
	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(now.Unix()),
		Member: requestID,
	})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	remaining := limit - int(currentCount) - 1
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining, nil
}
