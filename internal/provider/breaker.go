package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerInvoker wraps a backend with a circuit breaker so a flapping or
// quota-exhausted API fails fast instead of stalling every request
type BreakerInvoker struct {
	inner Invoker
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerInvoker wraps the given backend with a circuit breaker
func NewBreakerInvoker(inner Invoker) *BreakerInvoker {
	settings := gobreaker.Settings{
		Name:        inner.Name(),
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &BreakerInvoker{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the wrapped backend name
func (b *BreakerInvoker) Name() string {
	return fmt.Sprintf("%s (circuit breaker)", b.inner.Name())
}

// IsAvailable checks the wrapped backend
func (b *BreakerInvoker) IsAvailable() error {
	return b.inner.IsAvailable()
}

// Invoke forwards to the wrapped backend through the breaker
func (b *BreakerInvoker) Invoke(ctx context.Context, req Request) (*Response, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Invoke(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Response), nil
}
