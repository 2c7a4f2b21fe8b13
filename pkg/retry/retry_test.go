package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiqora/marketplace/pkg/retry"
)

func TestDoWithResult(t *testing.T) {
	cfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}

	t.Run("SucceedsFirstTry", func(t *testing.T) {
		calls := 0
		v, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		v, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			if calls < 3 {
				return 0, errors.New("transient")
			}
			return 7, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		wantErr := errors.New("still broken")
		calls := 0
		_, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
			calls++
			return 0, wantErr
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableSurfacesImmediately", func(t *testing.T) {
		fatal := errors.New("fatal")
		c := cfg
		c.ShouldRetry = func(err error) bool {
			return !errors.Is(err, fatal)
		}

		calls := 0
		_, err := retry.DoWithResult(t.Context(), c, func() (int, error) {
			calls++
			return 0, fatal
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := retry.DoWithResult(ctx, cfg, func() (int, error) {
			t.Fatal("fn must not run")
			return 0, nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDo(t *testing.T) {
	calls := 0
	err := retry.Do(t.Context(), retry.RetryConfig{
		MaxAttempts: 2,
		Backoff:     retry.LinearBackoff(time.Millisecond),
	}, func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
