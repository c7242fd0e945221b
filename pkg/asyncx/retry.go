package asyncx

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Abraxas-365/formkit/pkg/logx"
	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy is a bounded exponential backoff with factor 2.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries int
	// BaseDelay is the wait before the second attempt.
	BaseDelay time.Duration
}

// Attempts returns the total number of invocations the policy allows.
func (p RetryPolicy) Attempts() int {
	return p.MaxRetries + 1
}

// Delay returns the wait before attempt index+2.
func (p RetryPolicy) Delay(index int) time.Duration {
	return BackoffDelay(p.BaseDelay, index)
}

// Validate rejects negative fields.
func (p RetryPolicy) Validate() error {
	if p.MaxRetries < 0 {
		return ErrRegistry.NewWithMessage(CodeInvalidPolicy,
			fmt.Sprintf("max retries must be >= 0, got %d", p.MaxRetries)).
			WithDetail("max_retries", p.MaxRetries)
	}
	if p.BaseDelay < 0 {
		return ErrRegistry.NewWithMessage(CodeInvalidPolicy,
			fmt.Sprintf("base delay must be >= 0, got %s", p.BaseDelay)).
			WithDetail("base_delay", p.BaseDelay)
	}
	return nil
}

// BackoffDelay returns base * 2^index, saturating at math.MaxInt64.
func BackoffDelay(base time.Duration, index int) time.Duration {
	if base <= 0 {
		return 0
	}
	if index <= 0 {
		return base
	}
	if index >= 63 || base > time.Duration(math.MaxInt64>>uint(index)) {
		return time.Duration(math.MaxInt64)
	}
	return base << uint(index)
}

// Permanent marks err as not worth retrying. Retry returns the unwrapped
// error immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Retry invokes fn, and on failure retries it up to maxRetries more times,
// waiting baseDelay * 2^i before retry i+1. The last error is returned
// when every attempt fails.
func Retry[T any](ctx context.Context, maxRetries int, baseDelay time.Duration, fn Task[T], opts ...Option) (T, error) {
	return RetryWithPolicy(ctx, RetryPolicy{MaxRetries: maxRetries, BaseDelay: baseDelay}, fn, opts...)
}

// RetryWithPolicy is Retry driven by a RetryPolicy.
func RetryWithPolicy[T any](ctx context.Context, p RetryPolicy, fn Task[T], opts ...Option) (T, error) {
	var zero T
	if err := p.Validate(); err != nil {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	o := newOptions(opts)

	attempt := 0
	operation := func() (T, error) {
		attempt++
		return fn(ctx)
	}
	notify := func(err error, delay time.Duration) {
		o.debug("retry scheduled", logx.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}, err)
		if o.onRetry != nil {
			o.onRetry(attempt, err, delay)
		}
	}

	b := backoff.WithContext(
		backoff.WithMaxRetries(&policyBackOff{policy: p}, uint64(p.MaxRetries)),
		ctx,
	)

	v, err := backoff.RetryNotifyWithTimerAndData(operation, b, notify, &backoffTimer{clock: o.clock})
	if err != nil {
		return zero, err
	}
	return v, nil
}

// policyBackOff feeds RetryPolicy delays to the backoff package.
type policyBackOff struct {
	policy RetryPolicy
	index  int
}

func (b *policyBackOff) NextBackOff() time.Duration {
	d := b.policy.Delay(b.index)
	b.index++
	return d
}

func (b *policyBackOff) Reset() {
	b.index = 0
}
