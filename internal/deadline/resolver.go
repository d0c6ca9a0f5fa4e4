// Package deadline converts user intent (relative minutes or a wall-clock
// time in a named civil timezone) into an absolute instant, and formats
// instants for display.
package deadline

import (
	"fmt"
	"time"

	"github.com/JeffryGonzalez/timer/internal/errors"
)

// ResolveRelative returns now plus the given number of minutes. Minutes must
// already be validated positive by the caller; the function itself has no
// error cases.
func ResolveRelative(now time.Time, minutes int) time.Time {
	return now.Add(time.Duration(minutes) * time.Minute)
}

// ResolveZonedWallClock returns the next instant at which the named zone's
// wall clock reads hour:minute, strictly after now.
//
// The zone's UTC offset is never assumed fixed. A candidate instant is built
// at offset zero for the zone's current calendar date, the actual offset is
// queried at that candidate, and the subtraction is repeated with a second
// offset query at the approximation. The second pass matters within an hour
// of a DST transition, where the offset at the candidate and at the corrected
// instant disagree; a single pass lands one DST delta off there. If the
// converged instant is not strictly after now, the calendar date advances one
// day and the computation runs again.
func ResolveZonedWallClock(now time.Time, zone string, hour, minute int) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, errors.WrapZoneError(err, zone)
	}

	year, month, day := now.In(loc).Date()
	// Two passes cover today and tomorrow; the third absorbs a fall-back day
	// that is 25 hours long.
	for i := 0; i < 3; i++ {
		candidate := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

		_, offset := candidate.In(loc).Zone()
		approx := candidate.Add(-time.Duration(offset) * time.Second)

		_, offsetAtApprox := approx.In(loc).Zone()
		if offsetAtApprox != offset {
			approx = candidate.Add(-time.Duration(offsetAtApprox) * time.Second)
		}

		if approx.After(now) {
			return approx, nil
		}
		year, month, day = time.Date(year, month, day+1, 0, 0, 0, 0, time.UTC).Date()
	}

	// Unreachable for valid hour/minute; keep the compiler honest.
	return time.Time{}, errors.WrapZoneError(errNoOccurrence, zone)
}

var errNoOccurrence = fmt.Errorf("no future occurrence of wall-clock time")
