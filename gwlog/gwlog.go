// Package gwlog is the gateway's structured logger: leveled, key-value
// output via github.com/charmbracelet/log, with optional daily-rotated
// log files named via strftime.
package gwlog

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// Logger wraps a charmlog.Logger bound to one serial port for the
// lifetime of a session, so every line it emits is already tagged with
// the port it concerns.
type Logger struct {
	l *charmlog.Logger
}

// New creates a Logger writing to w at the given level.
func New(w io.Writer, level charmlog.Level) *Logger {
	l := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return &Logger{l: l}
}

// WithPort returns a Logger whose every entry carries a "port" field.
func (lg *Logger) WithPort(port string) *Logger {
	return &Logger{l: lg.l.With("port", port)}
}

// With returns a Logger with additional key-value context attached.
func (lg *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{l: lg.l.With(keyvals...)}
}

func (lg *Logger) Debug(msg string, keyvals ...interface{}) { lg.l.Debug(msg, keyvals...) }
func (lg *Logger) Info(msg string, keyvals ...interface{})  { lg.l.Info(msg, keyvals...) }
func (lg *Logger) Warn(msg string, keyvals ...interface{})  { lg.l.Warn(msg, keyvals...) }
func (lg *Logger) Error(msg string, keyvals ...interface{}) { lg.l.Error(msg, keyvals...) }
