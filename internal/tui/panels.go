package tui

import (
	"fmt"
	"strings"

	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/timer"
	"github.com/JeffryGonzalez/timer/internal/ui"
)

func (m *Model) shortcutLabel() string {
	zone := m.cfg.Shortcut.Zone
	if z := deadline.FindZone(deadline.USZones, zone); z != nil {
		zone = z.Label
	}
	return fmt.Sprintf("%02d:%02d %s", m.cfg.Shortcut.Hour, m.cfg.Shortcut.Minute, zone)
}

// viewPicker renders the duration picker shown while idle or pending.
func (m *Model) viewPicker() string {
	pending, hasPending := m.machine.Pending()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Take a break"))
	b.WriteString("\n\n")

	for i, minutes := range m.cfg.PresetsMinutes {
		selected := hasPending && pending.Kind == timer.SelectionPreset && pending.Minutes == minutes
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			RadioIcon(selected, m.styles),
			m.styles.KeyBinding.Render(fmt.Sprintf("[%d]", i+1)),
			m.styles.Base.Render(fmt.Sprintf("%d minutes", minutes))))
	}

	customSelected := hasPending && pending.Kind == timer.SelectionCustom
	customLabel := "custom minutes"
	if m.inputMode {
		customLabel = fmt.Sprintf("custom minutes: %s▌", m.customInput)
	} else if customSelected {
		customLabel = fmt.Sprintf("custom minutes: %d", pending.Minutes)
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		RadioIcon(customSelected, m.styles),
		m.styles.KeyBinding.Render("[c]"),
		m.styles.Base.Render(customLabel)))

	exactSelected := hasPending && pending.Kind == timer.SelectionExact
	exactLabel := "until " + m.shortcutLabel()
	if exactSelected {
		exactLabel = fmt.Sprintf("until %s", deadline.FormatInZoneLong(pending.At, m.cfg.Shortcut.Zone))
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n",
		RadioIcon(exactSelected, m.styles),
		m.styles.KeyBinding.Render("[e]"),
		m.styles.Base.Render(exactLabel)))

	b.WriteString("\n")
	if m.machine.CanConfirm() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.Success.Render("Start:"),
			m.styles.Base.Render(pending.Describe())))
	} else {
		b.WriteString(m.styles.Dim.Render("  Pick a duration to enable start\n"))
	}

	return m.styles.Panel.Render(b.String())
}

// viewCountdown renders the running countdown with the zone table.
func (m *Model) viewCountdown() string {
	now := m.clk.Now()
	startedAt, expiresAt, ok := m.machine.Run()
	if !ok {
		return ""
	}
	remaining := m.machine.Remaining(now)

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("On a break"))
	b.WriteString("\n\n")

	clockStyle := m.styles.Countdown
	if m.machine.Overdue(now) {
		clockStyle = m.styles.Overdue
		b.WriteString(m.styles.Overdue.Render("  ── OVERDUE ──"))
		b.WriteString("\n")
	}
	b.WriteString("  " + clockStyle.Render(bigClock(deadline.FormatClock(remaining))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n",
		m.styles.Dim.Render("Started:"),
		m.styles.Base.Render(startedAt.Local().Format("3:04:05 PM"))))
	b.WriteString(fmt.Sprintf("  %s %s (%s)\n",
		m.styles.Dim.Render("Ends:   "),
		m.styles.Base.Render(expiresAt.Local().Format("3:04:05 PM")),
		m.styles.Dim.Render(deadline.FormatRelative(expiresAt, now))))

	main := m.styles.Panel.Render(b.String())

	var z strings.Builder
	z.WriteString(m.styles.Header.Render("Across the U.S."))
	z.WriteString("\n")
	z.WriteString(ui.RenderZoneTable(expiresAt, m.zones))
	zonesPanel := m.styles.Box.Render(z.String())

	return main + "\n" + zonesPanel
}

// bigClock widens the countdown digits so they read at a glance.
func bigClock(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
