// Package ratelimit provides an in-process fixed-window request limiter.
//
// The limiter is best-effort, anti-abuse protection and is not a billing
// system of record. Every process instance keeps its own view, so in a
// horizontally scaled deployment the effective limit is limit multiplied by
// the instance count. Deployments that need cross-instance enforcement should
// use the redis-backed limiter in pkg/infra/ratelimit instead.
package ratelimit

import (
	"sync"
	"time"
)

type record struct {
	count     int
	resetTime time.Time
}

// Headers carries the values exposed as standard rate-limit response headers.
type Headers struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter counts requests per identifier in fixed windows.
type Limiter struct {
	mu           sync.Mutex
	records      map[string]*record
	timeProvider func() time.Time
	stop         chan struct{}
	stopOnce     sync.Once
}

type Opts struct {
	TimeProvider func() time.Time
}

func NewLimiter(opts *Opts) *Limiter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &Limiter{
		records:      make(map[string]*record),
		timeProvider: timeProvider,
		stop:         make(chan struct{}),
	}
}

// Allow reports whether a request for identifier fits in the current window.
//
// The call that opens a window (first observation of the identifier, or any
// call after the stored reset time has passed) reinitializes the record to
// count=1 and always succeeds, even with limit 0: the window is fresh.
// Within an open window, exactly limit requests succeed; the call that finds
// count >= limit is rejected without mutating the record.
func (l *Limiter) Allow(identifier string, limit int, window time.Duration) bool {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok || now.After(rec.resetTime) {
		l.records[identifier] = &record{
			count:     1,
			resetTime: now.Add(window),
		}
		return true
	}

	if rec.count >= limit {
		return false
	}

	rec.count++
	return true
}

// HeadersFor returns the limit, remaining and reset values for identifier
// without mutating any state. For an expired-but-unswept window it reports a
// full allowance, as if the next request were about to open a fresh window,
// but it does not open one.
func (l *Limiter) HeadersFor(identifier string, limit int, window time.Duration) Headers {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok || now.After(rec.resetTime) {
		return Headers{
			Limit:     limit,
			Remaining: limit,
			Reset:     now.Add(window),
		}
	}

	remaining := limit - rec.count
	if remaining < 0 {
		remaining = 0
	}
	return Headers{
		Limit:     limit,
		Remaining: remaining,
		Reset:     rec.resetTime,
	}
}

// StartSweeper launches a background pass that drops expired records every
// interval, bounding memory growth. Stop terminates it.
func (l *Limiter) StartSweeper(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-l.stop:
				return
			}
		}
	}()
}

// Sweep removes every record whose window has expired.
func (l *Limiter) Sweep() {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	for identifier, rec := range l.records {
		if now.After(rec.resetTime) {
			delete(l.records, identifier)
		}
	}
}

// Len returns the number of tracked identifiers.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}
