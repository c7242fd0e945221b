package asyncx

import "time"

// Clock abstracts time for the combinators that wait.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// Timer is a one-shot timer created by a Clock.
type Timer interface {
	C() <-chan time.Time
	// Stop prevents the timer from firing. It reports false if the timer
	// already fired or was stopped.
	Stop() bool
}

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (r *realTimer) C() <-chan time.Time { return r.t.C }
func (r *realTimer) Stop() bool          { return r.t.Stop() }

// backoffTimer adapts a Clock to backoff.Timer. Stop may be called before
// Start.
type backoffTimer struct {
	clock Clock
	timer Timer
}

func (b *backoffTimer) Start(d time.Duration) {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = b.clock.NewTimer(d)
}

func (b *backoffTimer) Stop() {
	if b.timer != nil {
		b.timer.Stop()
	}
}

func (b *backoffTimer) C() <-chan time.Time {
	return b.timer.C()
}
