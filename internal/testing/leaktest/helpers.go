// Package leaktest holds goroutine leak checks for tests that start
// background workers, tickers or hubs.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker remembers the goroutine count at creation
type GoroutineChecker struct {
	t        testing.TB
	baseline int
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines outlive the
// baseline once settleTimeout has passed. Goroutines that are still winding
// down get until the deadline to exit.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if n, ok := settle(g.baseline+tolerance, settleTimeout); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d", g.baseline, n, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle polls until at most limit goroutines remain or timeout elapses and
// returns the last count observed.
func settle(limit int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= limit {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
