package timer

import (
	"testing"
	"time"

	"github.com/JeffryGonzalez/timer/internal/clock"
)

var testStart = time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"10", 10, false},
		{" 25 ", 25, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMinutes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSelectionValidity(t *testing.T) {
	if Preset(0).Valid() {
		t.Error("Preset(0) should not be valid")
	}
	if Custom(-5).Valid() {
		t.Error("Custom(-5) should not be valid")
	}
	if Exact(time.Time{}).Valid() {
		t.Error("Exact(zero) should not be valid")
	}
	if !Preset(10).Valid() || !Custom(7).Valid() || !Exact(testStart).Valid() {
		t.Error("well-formed selections should be valid")
	}
	if (Selection{}).Valid() {
		t.Error("zero selection should not be valid")
	}
}

func TestSelectionResolve(t *testing.T) {
	if got := Preset(10).Resolve(testStart); got.Sub(testStart) != 10*time.Minute {
		t.Errorf("Preset(10).Resolve = %v, want now+10m", got)
	}
	exact := testStart.Add(3 * time.Hour)
	if got := Exact(exact).Resolve(testStart); !got.Equal(exact) {
		t.Errorf("Exact.Resolve = %v, want %v", got, exact)
	}
}

func TestChooseOverwritesPending(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)

	m.Choose(Preset(5))
	m.Choose(Custom(42))

	sel, ok := m.Pending()
	if !ok {
		t.Fatal("expected a pending selection")
	}
	if sel.Kind != SelectionCustom || sel.Minutes != 42 {
		t.Errorf("pending = %+v, want custom 42", sel)
	}
}

func TestChooseIgnoresInvalid(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)

	m.Choose(Custom(0))
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle after invalid choose", m.State())
	}
	if m.CanConfirm() {
		t.Error("confirm should stay disabled with no valid selection")
	}
}

func TestConfirmStartsRun(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)

	m.Choose(Preset(10))
	if !m.Confirm() {
		t.Fatal("Confirm should succeed with a pending selection")
	}

	startedAt, expiresAt, ok := m.Run()
	if !ok {
		t.Fatal("expected a running countdown")
	}
	if !startedAt.Equal(testStart) {
		t.Errorf("startedAt = %v, want %v", startedAt, testStart)
	}
	if got := expiresAt.Sub(startedAt).Milliseconds(); got != 600000 {
		t.Errorf("expiresAt - startedAt = %dms, want 600000ms", got)
	}
	if expiresAt.Before(startedAt) {
		t.Error("expiresAt must not precede startedAt at creation")
	}
	if _, ok := m.Pending(); ok {
		t.Error("pending selection should be cleared after confirm")
	}
}

func TestConfirmNoopWhenIdle(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)
	if m.Confirm() {
		t.Error("Confirm with nothing pending should be a no-op")
	}
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.State())
	}
}

func TestConfirmRejectsPastInstant(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)

	m.Choose(Exact(testStart.Add(-time.Hour)))
	if m.Confirm() {
		t.Error("Confirm should reject an already-past exact instant")
	}
	if m.State() != StatePending {
		t.Errorf("state = %v, want pending preserved", m.State())
	}
}

func TestCancelPending(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)

	m.Choose(Preset(5))
	m.CancelPending()
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.State())
	}
}

func TestCancelIdempotent(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)

	m.Cancel()
	if m.State() != StateIdle {
		t.Errorf("cancel on idle changed state to %v", m.State())
	}

	m.Choose(Preset(5))
	m.Confirm()
	m.Cancel()
	m.Cancel()
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle after double cancel", m.State())
	}
	if _, _, ok := m.Run(); ok {
		t.Error("no run should remain after cancel")
	}
}

func TestChooseIgnoredWhileRunning(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)

	m.Choose(Preset(5))
	m.Confirm()
	m.Choose(Preset(30))

	if m.State() != StateRunning {
		t.Errorf("state = %v, want running", m.State())
	}
	_, expiresAt, _ := m.Run()
	if got := expiresAt.Sub(testStart); got != 5*time.Minute {
		t.Errorf("running expiry changed to %v, want 5m untouched", got)
	}
}

func TestOverdueVariantKeepsRunning(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, false)

	m.Choose(Preset(10))
	m.Confirm()

	fake.Advance(10*time.Minute + time.Millisecond)
	now := fake.Now()

	if !m.Tick(now) {
		t.Error("without auto-stop the run should persist past expiry")
	}
	if m.Remaining(now) >= 0 {
		t.Errorf("remaining = %v, want negative once overdue", m.Remaining(now))
	}
	if !m.Overdue(now) {
		t.Error("run should report overdue")
	}
}

func TestAutoStopVariantReturnsToIdle(t *testing.T) {
	fake := clock.NewFake(testStart)
	m := NewMachine(fake, true)

	m.Choose(Preset(10))
	m.Confirm()

	// One millisecond before expiry: still running, remaining positive.
	fake.Advance(10*time.Minute - time.Millisecond)
	if !m.Tick(fake.Now()) {
		t.Fatal("run ended before expiry")
	}
	if m.Remaining(fake.Now()) <= 0 {
		t.Errorf("remaining = %v, want positive before expiry", m.Remaining(fake.Now()))
	}

	// Past expiry: clamped to zero and back to idle.
	fake.Advance(2 * time.Millisecond)
	if m.Remaining(fake.Now()) != 0 {
		t.Errorf("remaining = %v, want clamped to 0", m.Remaining(fake.Now()))
	}
	if m.Tick(fake.Now()) {
		t.Error("auto-stop should end the run at expiry")
	}
	if m.State() != StateIdle {
		t.Errorf("state = %v, want idle", m.State())
	}
}

func TestRemainingZeroWhenNotRunning(t *testing.T) {
	m := NewMachine(clock.NewFake(testStart), false)
	if m.Remaining(testStart) != 0 {
		t.Error("remaining should be zero when idle")
	}
	m.Choose(Preset(5))
	if m.Remaining(testStart) != 0 {
		t.Error("remaining should be zero while pending")
	}
}
