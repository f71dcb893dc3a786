// Package logger provides the leveled logger used by the command and server.
package logger

import (
	"io"
	"log"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l *log.Logger
}

// New returns a Logger that writes through the standard log package.
func New() Logger { return &stdLogger{l: log.Default()} }

// NewWriter returns a Logger that writes to w.
func NewWriter(w io.Writer) Logger { return &stdLogger{l: log.New(w, "", log.LstdFlags)} }

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }
