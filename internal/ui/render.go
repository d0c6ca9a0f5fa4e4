package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

// RenderZoneTable lists the expiry instant across the display zones, one
// line per zone, aligned on the label column.
func RenderZoneTable(expiresAt time.Time, zones []deadline.Zone) string {
	width := 0
	for _, z := range zones {
		if len(z.Label) > width {
			width = len(z.Label)
		}
	}

	lines := make([]string, 0, len(zones))
	for _, z := range zones {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, z.Label, deadline.FormatInZoneLong(expiresAt, z.ID)))
	}
	return strings.Join(lines, "\n")
}

// RenderPreview builds the non-interactive preview printed by `when` and
// `tui --cli`: the selection, its resolved expiry, and the zone table.
func RenderPreview(sel timer.Selection, expiresAt, now time.Time, zones []deadline.Zone) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("12")).
		Padding(1, 2)

	lines := []string{
		titleStyle.Render("breaktimer"),
		"",
		fmt.Sprintf("Break: %s", sel.Describe()),
		fmt.Sprintf("Ends:  %s (%s)", expiresAt.Local().Format("Mon Jan 2 3:04:05 PM"), deadline.FormatRelative(expiresAt, now)),
		"",
		sectionStyle.Render("Across the U.S.:"),
		RenderZoneTable(expiresAt, zones),
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// ZoneSummary is the plain-text expiry summary used for clipboard copies.
func ZoneSummary(expiresAt time.Time, zones []deadline.Zone) string {
	lines := make([]string, 0, len(zones)+1)
	lines = append(lines, fmt.Sprintf("Break ends %s", expiresAt.Local().Format("Mon Jan 2 3:04 PM")))
	for _, z := range zones {
		lines = append(lines, fmt.Sprintf("%s: %s", z.Label, deadline.FormatInZoneLong(expiresAt, z.ID)))
	}
	return strings.Join(lines, "\n")
}
