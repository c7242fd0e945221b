package asyncx

import (
	"context"

	"github.com/Abraxas-365/formkit/pkg/logx"
)

// Parallel starts every task before waiting on any and returns their
// values in input order. The first failure is returned as soon as it is
// observed; the other tasks keep running and their results are dropped.
// Pass WithGroup to keep track of them.
func Parallel[T any](ctx context.Context, tasks []Task[T], opts ...Option) ([]T, error) {
	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results, nil
	}

	o := newOptions(opts)

	type outcome struct {
		i   int
		v   T
		err error
	}

	// Buffered so tasks finishing after an early return never block.
	ch := make(chan outcome, len(tasks))
	for i, task := range tasks {
		o.spawn(func() {
			v, err := task(ctx)
			ch <- outcome{i: i, v: v, err: err}
		})
	}

	for range tasks {
		select {
		case r := <-ch:
			if r.err != nil {
				o.debug("parallel failed fast", logx.Fields{"index": r.i, "tasks": len(tasks)}, r.err)
				return nil, r.err
			}
			results[r.i] = r.v
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}

// Sequential runs tasks one at a time in input order. A task starts only
// after the previous one succeeded; the first failure stops the run.
func Sequential[T any](ctx context.Context, tasks []Task[T], opts ...Option) ([]T, error) {
	o := newOptions(opts)

	results := make([]T, 0, len(tasks))
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := task(ctx)
		if err != nil {
			o.debug("sequential stopped", logx.Fields{"index": i, "tasks": len(tasks)}, err)
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
