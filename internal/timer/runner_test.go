package timer

import (
	"testing"
	"time"

	"github.com/JeffryGonzalez/timer/internal/clock"
)

func TestRunnerSingleTicker(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)
	m.Choose(Preset(10))
	m.Confirm()

	r := NewRunner(fake, m, 250*time.Millisecond, nil)

	r.Start()
	r.Start()
	r.Start()
	if got := fake.ActiveTickers(); got != 1 {
		t.Errorf("active tickers after repeated Start = %d, want 1", got)
	}

	r.Stop()
	if got := fake.ActiveTickers(); got != 0 {
		t.Errorf("active tickers after Stop = %d, want 0", got)
	}
}

func TestRunnerStopIdempotent(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)
	r := NewRunner(fake, m, 250*time.Millisecond, nil)

	r.Stop() // never started
	r.Start()
	r.Stop()
	r.Stop()
	if got := fake.ActiveTickers(); got != 0 {
		t.Errorf("active tickers = %d, want 0", got)
	}
}

func TestRunnerTicksDeliverRemaining(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)
	m.Choose(Preset(10))
	m.Confirm()

	type tick struct {
		remaining time.Duration
		state     State
	}
	ticks := make(chan tick, 1)
	r := NewRunner(fake, m, 250*time.Millisecond, func(now time.Time, remaining time.Duration, state State) {
		ticks <- tick{remaining, state}
	})

	r.Start()
	defer r.Stop()

	fake.Advance(250 * time.Millisecond)
	select {
	case got := <-ticks:
		want := 10*time.Minute - 250*time.Millisecond
		if got.remaining != want {
			t.Errorf("remaining = %v, want %v", got.remaining, want)
		}
		if got.state != StateRunning {
			t.Errorf("state = %v, want running", got.state)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestRunnerAutoStopEndsLoop(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, true)
	m.Choose(Preset(10))
	m.Confirm()

	ticked := make(chan State, 1)
	r := NewRunner(fake, m, 250*time.Millisecond, func(now time.Time, remaining time.Duration, state State) {
		ticked <- state
	})

	r.Start()
	fake.Advance(10*time.Minute + time.Millisecond)

	select {
	case state := <-ticked:
		if state != StateIdle {
			t.Errorf("state on final tick = %v, want idle", state)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}

	r.Wait()
	if m.State() != StateIdle {
		t.Errorf("machine state = %v, want idle after auto-stop", m.State())
	}
}

func TestRunnerRestartAfterCancelSequence(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)
	r := NewRunner(fake, m, 250*time.Millisecond, nil)

	// choose/confirm/cancel churn must never accumulate tickers.
	for i := 0; i < 5; i++ {
		m.Choose(Preset(5))
		m.Confirm()
		r.Start()
		m.Cancel()
		r.Stop()
	}

	if got := fake.ActiveTickers(); got != 0 {
		t.Errorf("active tickers after churn = %d, want 0", got)
	}
}
