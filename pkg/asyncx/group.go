package asyncx

import (
	"sync"
	"sync/atomic"
)

// Group tracks goroutines launched by combinators that return before their
// tasks finish, such as Parallel after a failure or Race after a winner.
// The zero value is ready to use.
type Group struct {
	wg      sync.WaitGroup
	running atomic.Int64
}

// Go runs fn on a new goroutine tracked by the group.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	g.running.Add(1)
	go func() {
		defer g.wg.Done()
		defer g.running.Add(-1)
		fn()
	}()
}

// Wait blocks until every tracked goroutine has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}

// Running returns the number of tracked goroutines still executing.
func (g *Group) Running() int {
	return int(g.running.Load())
}
