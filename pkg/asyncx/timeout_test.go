package asyncx_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/formkit/pkg/asyncx"
	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeout_TaskWins(t *testing.T) {
	clock := newFakeClock()

	got, err := asyncx.WithTimeout(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "fast", nil
	}, asyncx.WithClock(clock))

	require.NoError(t, err)
	assert.Equal(t, "fast", got)
	assert.True(t, clock.Timer(0).Stopped(), "timer must be cleared once the task settles")
	assert.Zero(t, clock.Pending())
}

func TestWithTimeout_TaskFailurePassesThrough(t *testing.T) {
	boom := errors.New("boom")

	_, err := asyncx.WithTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 0, boom
	}, asyncx.WithClock(newFakeClock()))

	assert.Same(t, boom, err)
	assert.False(t, asyncx.IsDeadlineExceeded(err))
}

func TestWithTimeout_DeadlineAfterExactDuration(t *testing.T) {
	clock := newFakeClock()
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	taskCtx := make(chan context.Context, 1)
	type outcome struct {
		v   int
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := asyncx.WithTimeout(context.Background(), time.Second, func(ctx context.Context) (int, error) {
			taskCtx <- ctx
			<-release
			return 1, nil
		}, asyncx.WithClock(clock))
		done <- outcome{v, err}
	}()

	require.Eventually(t, func() bool { return clock.Pending() == 1 }, time.Second, time.Millisecond)

	clock.Advance(999 * time.Millisecond)
	select {
	case r := <-done:
		t.Fatalf("settled early: %v", r.err)
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(time.Millisecond)

	var r outcome
	select {
	case r = <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout never fired")
	}

	assert.Zero(t, r.v)
	assert.Equal(t, time.Second, clock.Elapsed())
	assert.True(t, asyncx.IsDeadlineExceeded(r.err))
	assert.ErrorIs(t, r.err, asyncx.ErrDeadlineExceeded)
	assert.ErrorIs(t, r.err, context.DeadlineExceeded)
	assert.True(t, errx.IsType(r.err, errx.TypeTimeout))

	d, ok := asyncx.DeadlineOf(r.err)
	require.True(t, ok)
	assert.Equal(t, time.Second, d)

	var e *errx.Error
	require.ErrorAs(t, r.err, &e)
	assert.Equal(t, int64(1000), e.Details["timeout_ms"])

	// The abandoned task was never cancelled.
	assert.NoError(t, (<-taskCtx).Err())
}

func TestWithTimeout_RealClock(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	_, err := asyncx.WithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) (int, error) {
		<-block
		return 0, nil
	})

	assert.True(t, asyncx.IsDeadlineExceeded(err))
}

func TestWithTimeout_InvalidDuration(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Second} {
		_, err := asyncx.WithTimeout(context.Background(), d, func(ctx context.Context) (int, error) {
			t.Fatal("task must not run")
			return 0, nil
		})
		assert.ErrorIs(t, err, asyncx.ErrInvalidTimeout)
	}
}

func TestDeadlineOf_OtherErrors(t *testing.T) {
	_, ok := asyncx.DeadlineOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = asyncx.DeadlineOf(context.DeadlineExceeded)
	assert.False(t, ok)
	assert.False(t, asyncx.IsDeadlineExceeded(context.DeadlineExceeded))
}
