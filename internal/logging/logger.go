package logging

// Leveled logging for the headless countdown commands

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLevel maps a config string to a LogLevel. Unknown values fall back to
// info so a typo in the config never silences the countdown.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "info", "":
		return LogLevelInfo
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging with an optional log file
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	file    *os.File
	fileLog *log.Logger
	stdout  *log.Logger
	stderr  *log.Logger
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{
		level:  level,
		stdout: log.New(os.Stdout, "", 0),
		stderr: log.New(os.Stderr, "", 0),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		l.fileLog = log.New(file, "", log.LstdFlags)
	}

	return l, nil
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level >= LogLevelError {
		msg := fmt.Sprintf("ERROR: "+format, v...)
		l.write(msg, true)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level >= LogLevelInfo {
		msg := fmt.Sprintf(format, v...)
		l.write(msg, false)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.level >= LogLevelVerbose {
		msg := fmt.Sprintf(format, v...)
		l.write(msg, false)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level >= LogLevelDebug {
		msg := fmt.Sprintf("DEBUG: "+format, v...)
		l.write(msg, false)
	}
}

// write writes a message to the appropriate outputs. Errors go to stderr,
// everything else to stdout; the log file receives all levels.
func (l *Logger) write(msg string, isError bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileLog != nil {
		l.fileLog.Println(msg)
	}

	if isError {
		l.stderr.Println(msg)
	} else {
		l.stdout.Println(msg)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogRunStart logs the start of a countdown run
func (l *Logger) LogRunStart(startedAt, expiresAt time.Time, autoStop bool) {
	l.Info("Countdown started")
	l.Verbose("  Started:  %s", startedAt.Format(time.RFC3339))
	l.Verbose("  Expires:  %s", expiresAt.Format(time.RFC3339))
	l.Verbose("  Auto-stop: %v", autoStop)
}

// LogRunEnd logs the end of a countdown run
func (l *Logger) LogRunEnd(reason string, overdueBy time.Duration) {
	if overdueBy > 0 {
		l.Info("Countdown finished (%s, overdue by %s)", reason, overdueBy.Round(time.Second))
		return
	}
	l.Info("Countdown finished (%s)", reason)
}
