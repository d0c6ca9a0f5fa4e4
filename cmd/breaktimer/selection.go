package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/errors"
	"github.com/JeffryGonzalez/timer/internal/timer"
)

// selectionFromFlags turns the shared --minutes/--at/--zone flags into a
// selection. Exactly one of minutes and at must be given; both commands that
// accept them share the same validation.
func selectionFromFlags(now time.Time, minutes int, at, zone string) (timer.Selection, error) {
	if minutes == 0 && at == "" {
		return timer.Selection{}, fmt.Errorf("give either --minutes or --at HH:MM")
	}
	if minutes != 0 && at != "" {
		return timer.Selection{}, fmt.Errorf("use either --minutes or --at, not both")
	}

	if minutes != 0 {
		n, err := timer.ParseMinutes(strconv.Itoa(minutes))
		if err != nil {
			return timer.Selection{}, err
		}
		return timer.Custom(n), nil
	}

	hour, minute, err := parseWallClock(at)
	if err != nil {
		return timer.Selection{}, err
	}
	resolved, err := deadline.ResolveZonedWallClock(now, zone, hour, minute)
	if err != nil {
		return timer.Selection{}, err
	}
	return timer.Exact(resolved), nil
}

// parseWallClock parses "HH:MM" in 24-hour form.
func parseWallClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, errors.WrapInputError(fmt.Errorf("expected HH:MM"), s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, errors.WrapInputError(fmt.Errorf("hour out of range (0-23)"), s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, errors.WrapInputError(fmt.Errorf("minute out of range (0-59)"), s)
	}
	return hour, minute, nil
}
