package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/config"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

var testNow = time.Date(2024, 3, 9, 6, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T, autoStop bool) (*Model, *clock.Fake) {
	t.Helper()
	cfg := config.CreateDefaultConfig()
	cfg.AutoStop = autoStop
	fake := clock.NewFake(testNow)
	return NewModel(cfg, fake, timer.Selection{}), fake
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, false)
	if m.machine.State() != timer.StateIdle {
		t.Errorf("initial state = %v, want idle", m.machine.State())
	}
	if len(m.zones) != 7 {
		t.Errorf("zones = %d, want 7", len(m.zones))
	}
}

func TestNewModelWithInitialSelection(t *testing.T) {
	cfg := config.CreateDefaultConfig()
	fake := clock.NewFake(testNow)
	m := NewModel(cfg, fake, timer.Preset(10))

	if m.machine.State() != timer.StateRunning {
		t.Fatalf("state = %v, want running from initial selection", m.machine.State())
	}
	_, expiresAt, _ := m.machine.Run()
	if got := expiresAt.Sub(testNow); got != 10*time.Minute {
		t.Errorf("expiry = %v after start, want 10m", got)
	}
}

func TestPresetHotkeyThenConfirm(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("2")) // second preset: 10 minutes
	sel, ok := m.machine.Pending()
	if !ok || sel.Minutes != 10 {
		t.Fatalf("pending = %+v, want 10-minute preset", sel)
	}

	m.Update(key("enter"))
	if m.machine.State() != timer.StateRunning {
		t.Errorf("state = %v, want running after confirm", m.machine.State())
	}
}

func TestPresetHotkeyOutOfRangeIgnored(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("9")) // only five presets configured
	if _, ok := m.machine.Pending(); ok {
		t.Error("out-of-range preset key should not select anything")
	}
}

func TestCustomInputFlow(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("c"))
	if !m.inputMode {
		t.Fatal("'c' should enter input mode")
	}

	m.Update(key("2"))
	m.Update(key("5"))
	if m.customInput != "25" {
		t.Errorf("customInput = %q, want %q", m.customInput, "25")
	}

	m.Update(key("backspace"))
	if m.customInput != "2" {
		t.Errorf("customInput after backspace = %q, want %q", m.customInput, "2")
	}

	m.Update(key("enter"))
	sel, ok := m.machine.Pending()
	if !ok || sel.Kind != timer.SelectionCustom || sel.Minutes != 2 {
		t.Errorf("pending = %+v, want custom 2 minutes", sel)
	}
	if m.inputMode {
		t.Error("input mode should end on a valid entry")
	}
}

func TestCustomInputInvalidKeepsConfirmDisabled(t *testing.T) {
	for _, input := range []string{"0", "-5", "abc"} {
		t.Run(input, func(t *testing.T) {
			m, _ := newTestModel(t, false)

			m.Update(key("c"))
			for _, ch := range strings.Split(input, "") {
				m.Update(key(ch))
			}
			m.Update(key("enter"))

			if m.machine.CanConfirm() {
				t.Errorf("confirm should stay disabled for input %q", input)
			}
			if m.err == "" {
				t.Error("invalid input should surface an inline error")
			}
		})
	}
}

func TestShortcutKeyChoosesExact(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("e"))
	sel, ok := m.machine.Pending()
	if !ok || sel.Kind != timer.SelectionExact {
		t.Fatalf("pending = %+v, want exact selection", sel)
	}
	// 17:00 New York on 2024-03-09 is still EST: 22:00 UTC.
	want := time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC)
	if !sel.At.Equal(want) {
		t.Errorf("shortcut instant = %v, want %v", sel.At.UTC(), want)
	}
}

func TestEscClearsPending(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("1"))
	m.Update(key("esc"))
	if m.machine.State() != timer.StateIdle {
		t.Errorf("state = %v, want idle after esc", m.machine.State())
	}
}

func TestChoosingNewPresetOverwritesPending(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("1"))
	m.Update(key("3"))
	sel, _ := m.machine.Pending()
	if sel.Minutes != 15 {
		t.Errorf("pending minutes = %d, want 15 (last choice wins)", sel.Minutes)
	}
}

func TestCancelRunning(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("1"))
	m.Update(key("enter"))
	m.Update(key("x"))
	if m.machine.State() != timer.StateIdle {
		t.Errorf("state = %v, want idle after cancel", m.machine.State())
	}
}

func TestTickRearmsExactlyOnce(t *testing.T) {
	m, _ := newTestModel(t, false)

	_, cmd := m.Update(tickMsg(testNow))
	if cmd == nil {
		t.Fatal("tick should re-arm the tick chain")
	}
}

func TestTickAutoStopReturnsToIdle(t *testing.T) {
	m, fake := newTestModel(t, true)

	m.Update(key("2")) // 10 minutes
	m.Update(key("enter"))

	fake.Advance(10*time.Minute + time.Millisecond)
	m.Update(tickMsg(fake.Now()))

	if m.machine.State() != timer.StateIdle {
		t.Errorf("state = %v, want idle after auto-stop tick", m.machine.State())
	}
	if m.status == "" {
		t.Error("auto-stop should leave a finished note")
	}
}

func TestOverdueBannerShown(t *testing.T) {
	m, fake := newTestModel(t, false)

	m.Update(key("1")) // 5 minutes
	m.Update(key("enter"))

	fake.Advance(6 * time.Minute)
	m.Update(tickMsg(fake.Now()))

	view := m.View()
	if !strings.Contains(view, "OVERDUE") {
		t.Error("view should show the overdue banner past expiry")
	}
	if !strings.Contains(view, "-") {
		t.Error("overdue countdown should show a negative clock")
	}
}

func TestViewPickerListsChoices(t *testing.T) {
	m, _ := newTestModel(t, false)

	view := m.View()
	if !strings.Contains(view, "5 minutes") || !strings.Contains(view, "30 minutes") {
		t.Errorf("picker missing presets:\n%s", view)
	}
	if !strings.Contains(view, "Pick a duration") {
		t.Error("picker should state that start is disabled with no selection")
	}
}

func TestViewCountdownShowsZones(t *testing.T) {
	m, _ := newTestModel(t, false)

	m.Update(key("1"))
	m.Update(key("enter"))

	view := m.View()
	if !strings.Contains(view, "Eastern") || !strings.Contains(view, "Hawaii") {
		t.Errorf("countdown missing zone table:\n%s", view)
	}
}

func TestPresetIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 0},
		{"5", 4},
		{"9", 8},
		{"0", -1},
		{"a", -1},
		{"enter", -1},
	}
	for _, tt := range tests {
		if got := presetIndex(tt.key); got != tt.want {
			t.Errorf("presetIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
