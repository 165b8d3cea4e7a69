package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerClient wraps a provider client with a circuit breaker so a
// misbehaving completion API sheds load fast instead of tying up request
// handlers until their timeouts.
type BreakerClient struct {
	inner   Client
	breaker *gobreaker.CircuitBreaker
}

func NewBreakerClient(name string, inner Client, timeout time.Duration, maxFailures uint32) *BreakerClient {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
	return &BreakerClient{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *BreakerClient) Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.inner.Ask(ctx, config, prompt)
	})
	if err != nil {
		return nil, err
	}
	resp, ok := result.(*CompletionResponse)
	if !ok {
		return nil, fmt.Errorf("breaker (%s): unexpected result type", c.breaker.Name())
	}
	return resp, nil
}
