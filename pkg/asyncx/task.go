package asyncx

import (
	"context"
	"time"

	"github.com/Abraxas-365/formkit/pkg/logx"
)

// Task is a unit of caller-owned asynchronous work.
type Task[T any] func(ctx context.Context) (T, error)

// RetryHook is called before each scheduled retry wait. attempt is the
// 1-based number of the attempt that just failed.
type RetryHook func(attempt int, err error, delay time.Duration)

type options struct {
	clock   Clock
	logger  *logx.Logger
	onRetry RetryHook
	group   *Group
}

// Option configures a combinator call.
type Option func(*options)

// WithClock sets the clock used for backoff waits and timeouts. Useful for
// testing.
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger logs scheduled retries and abandoned work at debug level.
func WithLogger(logger *logx.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// OnRetry sets a hook that is called before each retry wait.
func OnRetry(fn RetryHook) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// WithGroup registers every goroutine a combinator launches in g, so work
// that outlives the call can still be awaited.
func WithGroup(g *Group) Option {
	return func(o *options) {
		o.group = g
	}
}

func newOptions(opts []Option) *options {
	o := &options{clock: realClock{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// spawn starts fn on its own goroutine, tracked by the group when one is set.
func (o *options) spawn(fn func()) {
	if o.group != nil {
		o.group.Go(fn)
		return
	}
	go fn()
}

func (o *options) debug(msg string, fields logx.Fields, err error) {
	if o.logger == nil {
		return
	}
	o.logger.WithFields(fields).WithError(err).Debug(msg)
}
