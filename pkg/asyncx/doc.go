// Package asyncx provides generic combinators for coordinating goroutine
// based work: bounded retry with exponential backoff, timeout-guarded
// execution, fail-fast parallel and sequential runners, and first-to-settle
// racing, plus a few fan-out and rate-limiting helpers.
//
// # Tasks and Futures
//
// A [Task] is a func(ctx) (T, error) owned by the caller. A [Future]
// represents a task that is already running. Use [Run] or [Start] to begin
// work and [Future.Await] to block until the result is ready.
//
//	fut := asyncx.Start(ctx, func(ctx context.Context) (*Report, error) {
//	    return build(ctx)
//	})
//
//	// ... do other work ...
//
//	report, err := fut.Await()
//
// # Retry
//
// [Retry] invokes a task and, while it fails, retries it up to maxRetries
// more times, waiting baseDelay * 2^i before retry i+1. The last error is
// returned when every attempt fails. [BackoffDelay] is the pure delay
// function and [RetryPolicy] bundles the two parameters.
//
//	data, err := asyncx.Retry(ctx, 3, 100*time.Millisecond, fetch)
//
// Wrap an error with [Permanent] to stop retrying immediately.
//
// # Timeout
//
// [WithTimeout] races a task against a one-shot timer. A task that settles
// first propagates its own outcome, failures included. When the timer wins
// the call fails with [ErrDeadlineExceeded], which records the configured
// duration (see [DeadlineOf]). The task is not cancelled: it keeps the
// caller's context and its eventual result is dropped.
//
// # Parallel, Sequential and Race
//
// [Parallel] starts every task before waiting and returns results in input
// order, or the first failure as soon as it is seen. [Sequential] runs the
// tasks one after another and never starts a task after a failure.
// [Race] returns whichever running future settles first.
//
// Neither Parallel nor Race cancels the work they stop observing. Pass
// [WithGroup] to register those goroutines in a [Group] that can later be
// awaited:
//
//	var g asyncx.Group
//	_, err := asyncx.Parallel(ctx, tasks, asyncx.WithGroup(&g))
//	g.Wait() // every task has returned
//
// # Fan-out Helpers
//
// [Map], [ForEach] and the bounded [Pool] run on errgroup and do cancel
// the remaining work when one item fails. [AllSettled] waits for every task
// and never short-circuits.
//
// # Rate-Limiting Wrappers
//
// [Debounced] delays a function until calls stop arriving for a wait
// period; [Debouncer.Flush] and [Debouncer.Cancel] settle a pending call
// early. [Throttled] runs a function at most once per interval. [Once]
// caches the result of the first call.
//
// # Testing
//
// Every combinator that waits takes its timers from a [Clock]. Inject a
// fake one with [WithClock] to control time in tests without real sleeps.
package asyncx
