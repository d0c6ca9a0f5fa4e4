package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JeffryGonzalez/timer/internal/clock"
	"github.com/JeffryGonzalez/timer/internal/config"
	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/timer"
	"github.com/JeffryGonzalez/timer/internal/ui"
)

// Model is the break-timer dashboard model. One tick chain drives all
// recomputation: Init starts it, every tick handler re-arms exactly one
// successor, and nothing else schedules ticks, so at most one periodic
// callback is ever live.
type Model struct {
	cfg     *config.Config
	clk     clock.Clock
	machine *timer.Machine
	styles  Styles
	zones   []deadline.Zone

	width  int
	height int

	// Custom-minutes entry. Raw text is kept as typed; an unparseable value
	// simply never becomes a pending selection.
	inputMode   bool
	customInput string

	status string // transient line (clipboard result, finished note)
	err    string
}

// NewModel creates the dashboard model.
func NewModel(cfg *config.Config, clk clock.Clock, initial timer.Selection) *Model {
	m := &Model{
		cfg:     cfg,
		clk:     clk,
		machine: timer.NewMachine(clk, cfg.AutoStop),
		styles:  DefaultStyles,
		zones:   cfg.DisplayZones(),
	}
	if initial.Valid() {
		m.machine.Choose(initial)
		m.machine.Confirm()
	}
	return m
}

// tickMsg is sent on the recomputation cadence.
type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickInterval())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: clipboard unavailable"
		} else {
			m.status = "Expiry times copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasRunning := m.machine.State() == timer.StateRunning
	still := m.machine.Tick(now)
	if wasRunning && !still && m.machine.AutoStop() {
		m.status = "Break finished"
	}
	return m, tickCmd(m.cfg.TickInterval())
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if m.inputMode {
		return m.handleInputKey(msg)
	}

	switch m.machine.State() {
	case timer.StateRunning:
		return m.handleRunningKey(msg)
	default:
		return m.handlePickerKey(msg)
	}
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "c":
		m.inputMode = true
		m.customInput = ""
		m.err = ""
		return m, nil

	case "e":
		at, err := deadline.ResolveZonedWallClock(
			m.clk.Now(), m.cfg.Shortcut.Zone, m.cfg.Shortcut.Hour, m.cfg.Shortcut.Minute)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.machine.Choose(timer.Exact(at))
		m.err = ""
		return m, nil

	case "enter":
		if m.machine.Confirm() {
			m.err = ""
		}
		return m, nil

	case "esc":
		if m.err != "" {
			m.err = ""
			return m, nil
		}
		m.machine.CancelPending()
		return m, nil
	}

	// Preset hotkeys 1..9 map onto the configured preset list.
	if idx := presetIndex(msg.String()); idx >= 0 && idx < len(m.cfg.PresetsMinutes) {
		m.machine.Choose(timer.Preset(m.cfg.PresetsMinutes[idx]))
		m.err = ""
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputMode = false
		m.customInput = ""
		m.err = ""
		return m, nil

	case "enter":
		minutes, err := timer.ParseMinutes(m.customInput)
		if err != nil {
			// Stay in input mode; no valid selection, confirm stays disabled.
			m.err = fmt.Sprintf("%q is not a valid minute count", m.customInput)
			return m, nil
		}
		m.machine.Choose(timer.Custom(minutes))
		m.inputMode = false
		m.err = ""
		return m, nil

	case "backspace":
		if len(m.customInput) > 0 {
			m.customInput = m.customInput[:len(m.customInput)-1]
		}
		return m, nil
	}

	if s := msg.String(); len(s) == 1 {
		m.customInput += s
	}
	return m, nil
}

func (m *Model) handleRunningKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "x", "esc":
		m.machine.Cancel()
		m.status = "Break cancelled"
		return m, nil

	case "y":
		if _, expiresAt, ok := m.machine.Run(); ok {
			return m, copyToClipboard(ui.ZoneSummary(expiresAt, m.zones))
		}
		return m, nil
	}
	return m, nil
}

func presetIndex(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return -1
	}
	return int(key[0] - '1')
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string

	switch m.machine.State() {
	case timer.StateRunning:
		content = m.viewCountdown()
	default:
		content = m.viewPicker()
	}

	if m.err != "" {
		content += "\n\n" + m.styles.Error.Render("ERROR: "+m.err)
	}
	if m.status != "" {
		content += "\n\n" + m.styles.Success.Render(m.status)
	}

	content += "\n\n" + m.styles.Footer.Render(m.footer())
	return content
}

func (m *Model) footer() string {
	if m.inputMode {
		return "enter confirm · backspace delete · esc back"
	}
	switch m.machine.State() {
	case timer.StateRunning:
		return "x cancel · y copy expiry · q quit"
	case timer.StatePending:
		return "enter start · esc clear · q quit"
	default:
		return "1-9 preset · c custom · e until " + m.shortcutLabel() + " · q quit"
	}
}
