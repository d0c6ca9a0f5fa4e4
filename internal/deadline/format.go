package deadline

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatClock renders a remaining duration as a countdown clock. Durations of
// an hour or more show hours; negative durations keep their sign so an
// overdue run reads "-01:23".
func FormatClock(remaining time.Duration) string {
	sign := ""
	if remaining < 0 {
		sign = "-"
		remaining = -remaining
	}

	remaining = remaining.Round(time.Second)
	h := int(remaining / time.Hour)
	m := int(remaining % time.Hour / time.Minute)
	s := int(remaining % time.Minute / time.Second)

	if h > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m, s)
}

// FormatInZone renders an instant as a wall-clock time in the named zone.
// An unsupported zone identifier falls back to local time rather than
// failing; the worst case is a display in the wrong zone, never an error.
func FormatInZone(t time.Time, zone string) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return t.Local().Format("3:04 PM")
	}
	return t.In(loc).Format("3:04 PM")
}

// FormatInZoneLong is FormatInZone with the zone abbreviation and date.
func FormatInZoneLong(t time.Time, zone string) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return t.Local().Format("Mon 3:04 PM MST")
	}
	return t.In(loc).Format("Mon 3:04 PM MST")
}

// FormatDuration renders a duration in plain words, e.g. "10 minutes".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)

	switch {
	case d >= time.Hour:
		h := int(d / time.Hour)
		m := int(d % time.Hour / time.Minute)
		if m == 0 {
			return fmt.Sprintf("%d %s", h, plural(h, "hour"))
		}
		return fmt.Sprintf("%d %s %d %s", h, plural(h, "hour"), m, plural(m, "minute"))
	case d >= time.Minute:
		m := int(d / time.Minute)
		return fmt.Sprintf("%d %s", m, plural(m, "minute"))
	default:
		s := int(d / time.Second)
		return fmt.Sprintf("%d %s", s, plural(s, "second"))
	}
}

// FormatRelative phrases an instant relative to now, e.g. "10 minutes from
// now". Used in headers and one-shot command output.
func FormatRelative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
