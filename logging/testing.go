package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger returns a Debug+ logger in local time that writes through tb.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is NewTestLogger that also records every entry for assertions.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	observed, logs := observer.New(zapcore.DebugLevel)
	return &impl{level: NewAtomicLevelAt(DEBUG), appenders: []Appender{tbAppender{tb}, observed}}, logs
}

// tbAppender logs through testing.TB so lines are attributed to the test that wrote them.
type tbAppender struct {
	tb testing.TB
}

func (a tbAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	a.tb.Helper()
	line, err := formatEntry(entry, fields)
	a.tb.Log(line)
	return err
}

func (a tbAppender) Sync() error {
	return nil
}
