package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "The config file holds presets, tick interval, and display zones",
		Try:     fmt.Sprintf("Delete %s to regenerate the default config", configPath),
		Err:     err,
	}
}

// WrapZoneError wraps timezone lookup errors with user-friendly context
func WrapZoneError(err error, zone string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Unknown timezone %q", zone),
		Reason:  extractZoneReason(err),
		Hint:    "Zone names follow the IANA form, e.g. America/New_York",
		Try:     "breaktimer when --at 17:00 --zone America/New_York",
		Err:     err,
	}
}

// WrapInputError wraps user input errors with user-friendly context
func WrapInputError(err error, input string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Invalid duration input %q", input),
		Reason:  err.Error(),
		Hint:    "Minutes must be a whole number greater than zero",
		Try:     "breaktimer run --minutes 10",
		Err:     err,
	}
}

func extractZoneReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "unknown time zone") {
		return "The zone name is not present in the runtime's timezone data"
	}
	if strings.Contains(errStr, "tzdata") {
		return "No timezone database is available on this system"
	}

	return "Timezone lookup failed"
}
