// Package timer holds the break-timer state machine and the ticker runner
// that drives it outside the TUI.
package timer

import (
	"time"

	"github.com/JeffryGonzalez/timer/internal/clock"
)

// State is the run state of the machine.
type State int

const (
	StateIdle State = iota
	StatePending
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Machine is the countdown state machine. It is pure bookkeeping: time is
// passed in by whoever drives it (the TUI tick or the Runner), and all
// mutation happens from that single driver, so no locking is needed.
type Machine struct {
	clk      clock.Clock
	autoStop bool

	state     State
	pending   Selection
	startedAt time.Time
	expiresAt time.Time
}

// NewMachine creates an idle machine. With autoStop set, a running countdown
// returns to idle on the first tick at or past expiry; otherwise it persists
// as overdue until cancelled.
func NewMachine(clk clock.Clock, autoStop bool) *Machine {
	return &Machine{clk: clk, autoStop: autoStop}
}

// State returns the current run state.
func (m *Machine) State() State { return m.state }

// AutoStop reports the overdue policy.
func (m *Machine) AutoStop() bool { return m.autoStop }

// Pending returns the pending selection, if any.
func (m *Machine) Pending() (Selection, bool) {
	if m.state != StatePending {
		return Selection{}, false
	}
	return m.pending, true
}

// Run returns the active run bounds.
func (m *Machine) Run() (startedAt, expiresAt time.Time, ok bool) {
	if m.state != StateRunning {
		return time.Time{}, time.Time{}, false
	}
	return m.startedAt, m.expiresAt, true
}

// Choose records a pending selection, replacing any prior one. Invalid
// selections are ignored, and a running countdown is unaffected; the caller
// cancels first if it wants to restart.
func (m *Machine) Choose(sel Selection) {
	if m.state == StateRunning || !sel.Valid() {
		return
	}
	m.pending = sel
	m.state = StatePending
}

// CanConfirm reports whether Confirm would start a run.
func (m *Machine) CanConfirm() bool {
	return m.state == StatePending && m.pending.Valid()
}

// Confirm starts the countdown from the pending selection. It is a no-op
// when nothing is pending, or when an exact-instant selection has already
// passed (a past-dated time is no valid selection).
func (m *Machine) Confirm() bool {
	if !m.CanConfirm() {
		return false
	}

	now := m.clk.Now()
	expiresAt := m.pending.Resolve(now)
	if expiresAt.Before(now) {
		return false
	}

	m.startedAt = now
	m.expiresAt = expiresAt
	m.state = StateRunning
	m.pending = Selection{}
	return true
}

// CancelPending drops the pending selection.
func (m *Machine) CancelPending() {
	if m.state != StatePending {
		return
	}
	m.pending = Selection{}
	m.state = StateIdle
}

// Cancel stops the countdown. Calling it when already idle is a no-op.
func (m *Machine) Cancel() {
	if m.state == StateIdle {
		return
	}
	m.pending = Selection{}
	m.startedAt = time.Time{}
	m.expiresAt = time.Time{}
	m.state = StateIdle
}

// Tick recomputes the run against now and reports whether the countdown is
// still running. Under auto-stop the machine returns to idle once remaining
// reaches zero; otherwise an expired run keeps running as overdue, which is
// an expected state, not an error.
func (m *Machine) Tick(now time.Time) bool {
	if m.state != StateRunning {
		return false
	}
	if m.autoStop && !m.expiresAt.After(now) {
		m.Cancel()
		return false
	}
	return true
}

// Remaining derives the time left against now. It goes negative for an
// overdue run, except under auto-stop where it clamps to zero. Zero when not
// running.
func (m *Machine) Remaining(now time.Time) time.Duration {
	if m.state != StateRunning {
		return 0
	}
	remaining := m.expiresAt.Sub(now)
	if m.autoStop && remaining < 0 {
		return 0
	}
	return remaining
}

// Overdue reports whether a running countdown has passed its expiry.
func (m *Machine) Overdue(now time.Time) bool {
	return m.state == StateRunning && !m.expiresAt.After(now)
}
