package timer

import (
	"sync"
	"time"

	"github.com/JeffryGonzalez/timer/internal/clock"
)

// TickFunc is invoked on every runner tick with the derived remaining time.
type TickFunc func(now time.Time, remaining time.Duration, state State)

// Runner drives a Machine with a repeating ticker for headless use. The TUI
// has its own tick source and does not use it.
//
// At most one ticker is ever live: Start unconditionally stops the previous
// one before arming a new one, and Stop is idempotent.
type Runner struct {
	clk      clock.Clock
	machine  *Machine
	interval time.Duration
	onTick   TickFunc

	mu     sync.Mutex
	ticker clock.Ticker
	done   chan struct{}
	exited chan struct{}
}

// NewRunner creates a runner ticking every interval.
func NewRunner(clk clock.Clock, machine *Machine, interval time.Duration, onTick TickFunc) *Runner {
	return &Runner{clk: clk, machine: machine, interval: interval, onTick: onTick}
}

// Start arms the ticker and begins driving the machine. Any previously
// started ticker is stopped first.
func (r *Runner) Start() {
	r.Stop()

	r.mu.Lock()
	ticker := r.clk.NewTicker(r.interval)
	done := make(chan struct{})
	exited := make(chan struct{})
	r.ticker = ticker
	r.done = done
	r.exited = exited
	r.mu.Unlock()

	go func() {
		defer close(exited)
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C():
				still := r.machine.Tick(now)
				if r.onTick != nil {
					r.onTick(now, r.machine.Remaining(now), r.machine.State())
				}
				if !still {
					ticker.Stop()
					return
				}
			}
		}
	}()
}

// Stop cancels the ticker and waits for the tick loop to exit. Safe to call
// when never started or already stopped.
func (r *Runner) Stop() {
	r.mu.Lock()
	ticker, done, exited := r.ticker, r.done, r.exited
	r.ticker, r.done, r.exited = nil, nil, nil
	r.mu.Unlock()

	if ticker == nil {
		return
	}
	ticker.Stop()
	close(done)
	<-exited
}

// Wait blocks until the tick loop exits, either by auto-stop or Stop.
// Returns immediately if the runner was never started.
func (r *Runner) Wait() {
	r.mu.Lock()
	exited := r.exited
	r.mu.Unlock()

	if exited != nil {
		<-exited
	}
}
