package asyncx

import (
	"context"
	"sync"
	"time"
)

// ─── Fire-and-Forget ──────────────────────────────────────────────────────────

// Do fires fn in a goroutine and forgets it.
func Do(fn func()) {
	go fn()
}

// DoCtx fires fn in a goroutine only if ctx is not already done.
func DoCtx(ctx context.Context, fn func(context.Context)) {
	go func() {
		select {
		case <-ctx.Done():
			return
		default:
			fn(ctx)
		}
	}()
}

// ─── Debounce / Throttle ──────────────────────────────────────────────────────

// Debouncer delays fn until calls stop arriving for the configured wait.
type Debouncer struct {
	mu      sync.Mutex
	wait    time.Duration
	fn      func()
	timer   *time.Timer
	gen     uint64
	pending bool
}

// Debounced wraps fn in a Debouncer. Thread-safe.
func Debounced(wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{wait: wait, fn: fn}
}

// Call schedules fn, resetting any pending wait.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = true
	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.mu.Unlock()
	d.fn()
}

// Cancel drops a pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}

// Flush runs a pending call now, on the caller's goroutine. It is a no-op
// when nothing is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	d.mu.Unlock()
	d.fn()
}

// Pending reports whether a call is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Throttled wraps fn so that it is called at most once per interval.
// Calls that arrive while the interval has not elapsed are dropped.
// Thread-safe.
func Throttled(interval time.Duration, fn func()) func() {
	var (
		mu   sync.Mutex
		last time.Time
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if last.IsZero() || time.Since(last) >= interval {
			last = time.Now()
			go fn()
		}
	}
}

// ─── Once ─────────────────────────────────────────────────────────────────────

// Once wraps fn so it executes at most once, regardless of how many goroutines
// call the returned function simultaneously.
func Once[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}
