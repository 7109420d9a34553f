package logging

import "github.com/vvka-141/litezip/pkg/litezip"

var (
	_ litezip.Logger = (*NullLogger)(nil)
	_ litezip.Logger = (*ConsoleLogger)(nil)
)

// NullLogger discards every message.
// It is the scanner's default, so library callers get silence unless they
// attach a logger with WithLogger.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
