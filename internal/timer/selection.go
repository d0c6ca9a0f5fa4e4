package timer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JeffryGonzalez/timer/internal/deadline"
	"github.com/JeffryGonzalez/timer/internal/errors"
)

// SelectionKind identifies which duration variant a selection holds.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionPreset
	SelectionCustom
	SelectionExact
)

// Selection is a pending duration choice. Exactly one variant is active;
// constructing a new selection replaces the previous one wholesale, so the
// variants are mutually exclusive by construction.
type Selection struct {
	Kind    SelectionKind
	Minutes int       // SelectionPreset, SelectionCustom
	At      time.Time // SelectionExact
}

// Preset returns a selection for one of the fixed preset durations.
func Preset(minutes int) Selection {
	if minutes <= 0 {
		return Selection{}
	}
	return Selection{Kind: SelectionPreset, Minutes: minutes}
}

// Custom returns a selection for a user-entered minute count.
func Custom(minutes int) Selection {
	if minutes <= 0 {
		return Selection{}
	}
	return Selection{Kind: SelectionCustom, Minutes: minutes}
}

// Exact returns a selection for a precise instant.
func Exact(at time.Time) Selection {
	if at.IsZero() {
		return Selection{}
	}
	return Selection{Kind: SelectionExact, At: at}
}

// ParseMinutes parses a custom minute count. Non-numeric, non-positive, or
// empty input is an error; the caller treats it as "no valid selection" and
// keeps the confirm affordance disabled.
func ParseMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.WrapInputError(fmt.Errorf("empty input"), s)
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.WrapInputError(fmt.Errorf("not a whole number"), s)
	}
	if n <= 0 {
		return 0, errors.WrapInputError(fmt.Errorf("must be greater than zero"), s)
	}
	return n, nil
}

// Valid reports whether the selection holds a confirmable choice.
func (s Selection) Valid() bool {
	switch s.Kind {
	case SelectionPreset, SelectionCustom:
		return s.Minutes > 0
	case SelectionExact:
		return !s.At.IsZero()
	default:
		return false
	}
}

// Resolve converts the selection into an absolute expiry instant.
func (s Selection) Resolve(now time.Time) time.Time {
	switch s.Kind {
	case SelectionPreset, SelectionCustom:
		return deadline.ResolveRelative(now, s.Minutes)
	case SelectionExact:
		return s.At
	default:
		return time.Time{}
	}
}

// Describe renders the selection for display.
func (s Selection) Describe() string {
	switch s.Kind {
	case SelectionPreset, SelectionCustom:
		return deadline.FormatDuration(time.Duration(s.Minutes) * time.Minute)
	case SelectionExact:
		return "until " + deadline.FormatInZoneLong(s.At, "Local")
	default:
		return "nothing selected"
	}
}
