package asyncx_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Abraxas-365/formkit/pkg/asyncx"
	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/Abraxas-365/formkit/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelay(t *testing.T) {
	cases := []struct {
		base  time.Duration
		index int
		want  time.Duration
	}{
		{100 * time.Millisecond, 0, 100 * time.Millisecond},
		{100 * time.Millisecond, 1, 200 * time.Millisecond},
		{100 * time.Millisecond, 3, 800 * time.Millisecond},
		{0, 5, 0},
		{-time.Second, 2, 0},
		{time.Nanosecond, 62, time.Duration(1 << 62)},
		{time.Nanosecond, 63, time.Duration(math.MaxInt64)},
		{time.Hour, 40, time.Duration(math.MaxInt64)},
		{time.Second, 1000, time.Duration(math.MaxInt64)},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s<<%d", tc.base, tc.index), func(t *testing.T) {
			assert.Equal(t, tc.want, asyncx.BackoffDelay(tc.base, tc.index))
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	p := asyncx.RetryPolicy{MaxRetries: 3, BaseDelay: 50 * time.Millisecond}
	assert.Equal(t, 4, p.Attempts())
	assert.Equal(t, 200*time.Millisecond, p.Delay(2))
	assert.NoError(t, p.Validate())

	err := asyncx.RetryPolicy{MaxRetries: -1}.Validate()
	assert.ErrorIs(t, err, asyncx.ErrInvalidPolicy)
	assert.True(t, errx.IsType(err, errx.TypeValidation))

	err = asyncx.RetryPolicy{BaseDelay: -time.Millisecond}.Validate()
	assert.ErrorIs(t, err, asyncx.ErrInvalidPolicy)
}

func TestRetry_AlwaysFailing(t *testing.T) {
	for _, n := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("maxRetries=%d", n), func(t *testing.T) {
			clock := newAutoClock()
			calls := 0

			_, err := asyncx.Retry(context.Background(), n, 10*time.Millisecond, func(ctx context.Context) (int, error) {
				calls++
				return 0, fmt.Errorf("attempt %d", calls)
			}, asyncx.WithClock(clock))

			require.Error(t, err)
			assert.Equal(t, n+1, calls)
			assert.EqualError(t, err, fmt.Sprintf("attempt %d", n+1))
			assert.Len(t, clock.Delays(), n)
		})
	}
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	const k = 3
	clock := newAutoClock()
	calls := 0

	got, err := asyncx.Retry(context.Background(), 5, 100*time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		if calls <= k {
			return "", errors.New("not yet")
		}
		return "ok", nil
	}, asyncx.WithClock(clock))

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, k+1, calls)
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
	}, clock.Delays())
	assert.Equal(t, 700*time.Millisecond, clock.Elapsed())
}

func TestRetry_WaitsOnTimer(t *testing.T) {
	clock := newFakeClock()
	calls := make(chan int, 4)
	n := 0

	done := make(chan error, 1)
	go func() {
		_, err := asyncx.Retry(context.Background(), 1, time.Second, func(ctx context.Context) (int, error) {
			n++
			calls <- n
			return 0, errors.New("fail")
		}, asyncx.WithClock(clock))
		done <- err
	}()

	assert.Equal(t, 1, <-calls)
	require.Eventually(t, func() bool { return clock.Pending() == 1 }, time.Second, time.Millisecond)

	clock.Advance(999 * time.Millisecond)
	select {
	case <-calls:
		t.Fatal("second attempt started before the backoff elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, <-calls)
	assert.Error(t, <-done)
}

func TestRetry_Permanent(t *testing.T) {
	clock := newAutoClock()
	stop := errors.New("bad credentials")
	calls := 0

	_, err := asyncx.Retry(context.Background(), 5, time.Millisecond, func(ctx context.Context) (int, error) {
		calls++
		return 0, asyncx.Permanent(stop)
	}, asyncx.WithClock(clock))

	assert.Same(t, stop, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, clock.Delays())
}

func TestRetry_InvalidArguments(t *testing.T) {
	called := false
	task := func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	}

	_, err := asyncx.Retry(context.Background(), -1, time.Millisecond, task)
	assert.ErrorIs(t, err, asyncx.ErrInvalidPolicy)

	_, err = asyncx.Retry(context.Background(), 1, -time.Millisecond, task)
	assert.ErrorIs(t, err, asyncx.ErrInvalidPolicy)

	assert.False(t, called)
}

func TestRetry_ContextCancelled(t *testing.T) {
	t.Run("before first attempt", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		_, err := asyncx.Retry(ctx, 3, time.Millisecond, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("fail")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("between attempts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		calls := 0
		_, err := asyncx.Retry(ctx, 10, time.Hour, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("fail")
		}, asyncx.WithClock(newFakeClock()), asyncx.OnRetry(func(int, error, time.Duration) {
			cancel()
		}))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestRetry_HooksAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logCfg := logx.DefaultConfig()
	logCfg.Level = logx.LevelDebug
	logCfg.EnableTimestamp = false
	logCfg.Output = &buf
	logger := logx.NewLogger(logCfg)

	var attempts []int
	var delays []time.Duration

	_, err := asyncx.Retry(context.Background(), 2, 5*time.Millisecond, func(ctx context.Context) (int, error) {
		return 0, errors.New("flaky")
	},
		asyncx.WithClock(newAutoClock()),
		asyncx.WithLogger(logger),
		asyncx.OnRetry(func(attempt int, err error, delay time.Duration) {
			attempts = append(attempts, attempt)
			delays = append(delays, delay)
		}),
	)

	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Equal(t, []time.Duration{5 * time.Millisecond, 10 * time.Millisecond}, delays)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("retry scheduled")))
	assert.Contains(t, buf.String(), "attempt=1")
}

func TestRetryWithPolicy(t *testing.T) {
	clock := newAutoClock()
	calls := 0

	got, err := asyncx.RetryWithPolicy(context.Background(),
		asyncx.RetryPolicy{MaxRetries: 1, BaseDelay: time.Second},
		func(ctx context.Context) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("first")
			}
			return 42, nil
		}, asyncx.WithClock(clock))

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, []time.Duration{time.Second}, clock.Delays())
}
