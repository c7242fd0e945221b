package asyncx

import (
	"context"
	"sync"
)

// Race returns the outcome of whichever future settles first, success or
// failure. Futures that are already settled win in argument order. Losers
// are left running.
func Race[T any](ctx context.Context, futures ...*Future[T]) (T, error) {
	var zero T
	if len(futures) == 0 {
		return zero, ErrRegistry.New(CodeNoCompetitors)
	}

	for _, f := range futures {
		select {
		case <-f.Done():
			return f.Await()
		default:
		}
	}

	winner := make(chan *Future[T], len(futures))
	for _, f := range futures {
		go func() {
			<-f.Done()
			winner <- f
		}()
	}

	select {
	case f := <-winner:
		return f.Await()
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// RaceTasks starts every task and races the resulting futures.
func RaceTasks[T any](ctx context.Context, tasks []Task[T], opts ...Option) (T, error) {
	o := newOptions(opts)
	futures := make([]*Future[T], len(tasks))
	for i, task := range tasks {
		futures[i] = start(ctx, task, o)
	}
	return Race(ctx, futures...)
}

// Result holds the outcome of a single settled async operation.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the result carries no error.
func (r Result[T]) OK() bool { return r.Err == nil }

// AllSettled runs all tasks concurrently and waits for every one to finish.
// It never short-circuits: it always returns one Result per task.
func AllSettled[T any](ctx context.Context, tasks ...Task[T]) []Result[T] {
	results := make([]Result[T], len(tasks))
	var wg sync.WaitGroup
	wg.Add(len(tasks))

	for i, task := range tasks {
		go func() {
			defer wg.Done()
			v, err := task(ctx)
			results[i] = Result[T]{Value: v, Err: err}
		}()
	}
	wg.Wait()
	return results
}
