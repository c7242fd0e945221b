package asyncx

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item concurrently and returns the results in the
// original order. The first error cancels the context passed to the rest.
func Map[T any, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	return collect(ctx, -1, items, fn)
}

// ForEach applies fn to every item concurrently and returns the first
// error after all goroutines have finished.
func ForEach[T any](ctx context.Context, items []T, fn func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			return fn(gctx, item)
		})
	}
	return g.Wait()
}

// Pool is Map with at most workers goroutines in flight. Use it when
// unbounded fan-out would overwhelm whatever fn talks to.
func Pool[T any, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if workers <= 0 {
		workers = 1
	}
	return collect(ctx, workers, items, fn)
}

func collect[T any, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
