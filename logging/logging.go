// Package logging is the leveled, structured logger shared by the planner and its command line tool. Every entry
// is built as a zap entry and handed to each of the logger's appenders.
package logging

import (
	"context"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger = NewLogger("asvplan")
)

// Logger is the logging interface handed to every planner component.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	// CDebugf logs at debug level, or regardless of level when ctx was returned by EnableDebugMode.
	CDebugf(ctx context.Context, template string, args ...interface{})

	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	Warnf(template string, args ...interface{})
	Warnw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named `<name>.<subname>`. It writes to the same appenders at its own level,
	// starting from this logger's current one.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	AddAppender(appender Appender)
	// Sync flushes every appender.
	Sync() error
}

// ReplaceGlobal replaces the global logger.
func ReplaceGlobal(logger Logger) {
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

// Global returns the global logger. It is used where no logger is passed down, such as unchecked errors.
func Global() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// NewLogger returns a logger writing Info+ entries to stdout in UTC.
func NewLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(INFO), inUTC: true, appenders: []Appender{NewStdoutAppender()}}
}

// NewBlankLogger returns a Debug+ logger in UTC with no appenders. Outputs are added with AddAppender.
func NewBlankLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(DEBUG), inUTC: true}
}
