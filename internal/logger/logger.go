// Package logger provides the shared logging interface for the
// converter. Progress and timing output goes through a Logger so that
// quiet runs pay nothing and tests can capture what verbose runs say.
package logger

import (
	"io"
	"log"
)

// Ensure implementations satisfy the interface.
var (
	_ Logger = (*nopLogger)(nil)
	_ Logger = (*standardLogger)(nil)
)

// Logger is the minimal logging surface the converter needs.
type Logger interface {
	Printf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NopLogger discards everything. Used for non-verbose runs.
var NopLogger Logger = &nopLogger{}

type nopLogger struct{}

func (*nopLogger) Printf(format string, v ...any) {}
func (*nopLogger) Debugf(format string, v ...any) {}

// standardLogger writes through a stdlib log.Logger with no prefix or
// timestamp; output is user-facing progress text, not a server log.
type standardLogger struct {
	logger *log.Logger
	debug  bool
}

// NewStandardLogger returns a Logger writing to w. Debugf lines are
// suppressed unless debug is set.
func NewStandardLogger(w io.Writer, debug bool) Logger {
	return &standardLogger{
		logger: log.New(w, "", 0),
		debug:  debug,
	}
}

func (s *standardLogger) Printf(format string, v ...any) {
	s.logger.Printf(format, v...)
}

func (s *standardLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.logger.Printf("DEBUG: "+format, v...)
	}
}
