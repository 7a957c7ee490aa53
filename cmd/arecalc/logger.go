package main

import (
	"io"
	"log"
)

// stdLogger writes leveled messages through the standard log package.
// Debug lines are only emitted in verbose mode.
type stdLogger struct {
	l       *log.Logger
	verbose bool
}

func newStdLogger(w io.Writer, verbose bool) *stdLogger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags), verbose: verbose}
}

func (s *stdLogger) Debugf(format string, args ...any) {
	if s.verbose {
		s.l.Printf("[DEBUG] "+format, args...)
	}
}

func (s *stdLogger) Infof(format string, args ...any) {
	if s.verbose {
		s.l.Printf("[INFO] "+format, args...)
	}
}

func (s *stdLogger) Warnf(format string, args ...any)  { s.l.Printf("[WARN] "+format, args...) }
func (s *stdLogger) Errorf(format string, args ...any) { s.l.Printf("[ERROR] "+format, args...) }
