// Package retry wraps repository calls with bounded, optionally
// backed-off retries. Non-retryable errors short-circuit immediately.
package retry

import (
	"context"
	"math/rand"
	"time"
)

type Retrier interface {
	Do(ctx context.Context, fn func() error) error
}

// IsRetryableFunc reports whether an error is worth another attempt.
type IsRetryableFunc func(err error) bool

type Backoff interface {
	// Delay returns how long to wait before attempt n (1-based).
	Delay(attempt int) time.Duration
}

type ExponentialBackoff struct {
	Base   time.Duration
	Factor float64
	Max    time.Duration
	Jitter bool
}

func (b ExponentialBackoff) Delay(attempt int) time.Duration {
	d := float64(b.Base)
	for i := 1; i < attempt; i++ {
		d *= b.Factor
	}
	if b.Max > 0 && d > float64(b.Max) {
		d = float64(b.Max)
	}
	if b.Jitter {
		d *= 0.5 + rand.Float64()/2
	}
	return time.Duration(d)
}

type noBackoff struct{}

func (noBackoff) Delay(int) time.Duration { return 0 }

type retrier struct {
	maxAttempts int
	isRetryable IsRetryableFunc
	backoff     Backoff
}

type RetryOption func(*retrier)

func WithMaxAttempts(n int) RetryOption {
	return func(r *retrier) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func WithIsRetryableFunc(fn IsRetryableFunc) RetryOption {
	return func(r *retrier) {
		r.isRetryable = fn
	}
}

func WithBackoff(b Backoff) RetryOption {
	return func(r *retrier) {
		r.backoff = b
	}
}

func New(opts ...RetryOption) Retrier {
	r := &retrier{
		maxAttempts: 1,
		isRetryable: func(error) bool { return true },
		backoff:     noBackoff{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *retrier) Do(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if !r.isRetryable(err) || attempt == r.maxAttempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoff.Delay(attempt)):
		}
	}
	return err
}
