package asyncx

import "context"

// Future represents a value that will be available asynchronously.
// Create one with Run or Start and retrieve its value with Await.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) settle(v T, err error) {
	f.value, f.err = v, err
	close(f.done)
}

// Run executes fn in a goroutine and returns a Future for its result.
// The goroutine starts immediately.
func Run[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.settle(fn())
	}()
	return f
}

// Start runs task with ctx in a goroutine, honouring WithGroup.
func Start[T any](ctx context.Context, task Task[T], opts ...Option) *Future[T] {
	return start(ctx, task, newOptions(opts))
}

func start[T any](ctx context.Context, task Task[T], o *options) *Future[T] {
	f := newFuture[T]()
	o.spawn(func() {
		f.settle(task(ctx))
	})
	return f
}

// Settled returns a Future that is already complete.
func Settled[T any](v T, err error) *Future[T] {
	f := newFuture[T]()
	f.settle(v, err)
	return f
}

// Done is closed once the Future has a result.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the Future completes and returns its value and error.
// Safe to call multiple times and from multiple goroutines.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext is Await bounded by ctx. Giving up does not stop the work.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
