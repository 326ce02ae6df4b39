package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sprintpulse/internal/retry"

	"github.com/stretchr/testify/require"
)

func TestRetrier_Do(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		r := retry.New(retry.WithMaxAttempts(3))

		calls := 0
		err := r.Do(context.Background(), func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 1, calls)
	})

	t.Run("retries up to max attempts", func(t *testing.T) {
		r := retry.New(retry.WithMaxAttempts(3))

		calls := 0
		failure := errors.New("transient")
		err := r.Do(context.Background(), func() error {
			calls++
			return failure
		})
		require.ErrorIs(t, err, failure)
		require.Equal(t, 3, calls)
	})

	t.Run("recovers mid way", func(t *testing.T) {
		r := retry.New(retry.WithMaxAttempts(3))

		calls := 0
		err := r.Do(context.Background(), func() error {
			calls++
			if calls < 2 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("non-retryable short-circuits", func(t *testing.T) {
		permanent := errors.New("permanent")
		r := retry.New(
			retry.WithMaxAttempts(5),
			retry.WithIsRetryableFunc(func(err error) bool {
				return !errors.Is(err, permanent)
			}),
		)

		calls := 0
		err := r.Do(context.Background(), func() error {
			calls++
			return permanent
		})
		require.ErrorIs(t, err, permanent)
		require.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		r := retry.New(
			retry.WithMaxAttempts(3),
			retry.WithBackoff(retry.ExponentialBackoff{Base: time.Hour}),
		)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := r.Do(ctx, func() error {
			return errors.New("transient")
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExponentialBackoff_Delay(t *testing.T) {
	b := retry.ExponentialBackoff{
		Base:   100 * time.Millisecond,
		Factor: 2,
		Max:    300 * time.Millisecond,
	}

	require.Equal(t, 100*time.Millisecond, b.Delay(1))
	require.Equal(t, 200*time.Millisecond, b.Delay(2))
	require.Equal(t, 300*time.Millisecond, b.Delay(3))
	require.Equal(t, 300*time.Millisecond, b.Delay(4))

	jittered := retry.ExponentialBackoff{Base: 100 * time.Millisecond, Factor: 2, Jitter: true}
	for i := 0; i < 10; i++ {
		d := jittered.Delay(1)
		require.GreaterOrEqual(t, d, 50*time.Millisecond)
		require.LessOrEqual(t, d, 100*time.Millisecond)
	}
}
