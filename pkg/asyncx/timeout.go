package asyncx

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/formkit/pkg/logx"
)

// WithTimeout runs fn and a one-shot timer of d side by side. Whichever
// settles first decides the outcome. When the timer wins the error is
// ErrDeadlineExceeded carrying d; fn keeps running on the caller's ctx and
// its result is discarded.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn Task[T], opts ...Option) (T, error) {
	var zero T
	if d <= 0 {
		return zero, ErrRegistry.NewWithMessage(CodeInvalidTimeout,
			fmt.Sprintf("timeout must be positive, got %s", d)).
			WithDetail("timeout_ms", d.Milliseconds())
	}

	o := newOptions(opts)

	timer := o.clock.NewTimer(d)
	defer timer.Stop()

	fut := start(ctx, fn, o)

	select {
	case <-fut.Done():
		return fut.Await()
	case <-timer.C():
		o.debug("task abandoned after timeout", logx.Fields{"timeout_ms": d.Milliseconds()}, nil)
		return zero, deadlineExceeded(d)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
