// Package diag routes internal diagnostics of the Xperience enrichers
// through mtlog's selflog.
package diag

import (
	"fmt"

	"github.com/willibrandon/mtlog/selflog"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func (l level) String() string {
	switch l {
	case levelDebug:
		return "DEBUG"
	case levelInfo:
		return "INFO"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes component-prefixed messages to selflog.
type Logger struct {
	component string
}

// New creates a logger for the named component.
func New(component string) *Logger {
	return &Logger{component: component}
}

func (l *Logger) log(lvl level, format string, args ...any) {
	if !selflog.IsEnabled() {
		return
	}
	selflog.Printf("[%s] %s %s", l.component, lvl, fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.log(levelDebug, format, args...) }

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) { l.log(levelInfo, format, args...) }

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) { l.log(levelWarn, format, args...) }

// Error logs an error.
func (l *Logger) Error(format string, args ...any) { l.log(levelError, format, args...) }
