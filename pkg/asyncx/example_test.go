package asyncx_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/formkit/pkg/asyncx"
)

func ExampleRetry() {
	calls := 0
	v, err := asyncx.Retry(context.Background(), 3, time.Millisecond, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("not ready")
		}
		return "ready", nil
	})
	fmt.Println(v, err, calls)
	// Output: ready <nil> 3
}

func ExampleBackoffDelay() {
	for i := range 4 {
		fmt.Println(asyncx.BackoffDelay(100*time.Millisecond, i))
	}
	// Output:
	// 100ms
	// 200ms
	// 400ms
	// 800ms
}

func ExampleWithTimeout() {
	block := make(chan struct{})
	defer close(block)

	_, err := asyncx.WithTimeout(context.Background(), 5*time.Millisecond, func(ctx context.Context) (int, error) {
		<-block
		return 0, nil
	})

	d, _ := asyncx.DeadlineOf(err)
	fmt.Println(asyncx.IsDeadlineExceeded(err), d)
	// Output: true 5ms
}

func ExampleParallel() {
	square := func(n int) asyncx.Task[int] {
		return func(ctx context.Context) (int, error) { return n * n, nil }
	}

	got, err := asyncx.Parallel(context.Background(), []asyncx.Task[int]{square(1), square(2), square(3)})
	fmt.Println(got, err)
	// Output: [1 4 9] <nil>
}
