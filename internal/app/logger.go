package app

import (
	"fmt"
	"io"
	"time"
)

// Logger is the component logger shared by the generator packages.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one "<RFC3339> [LEVEL] component: message" line per call.
type FileLogger struct {
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w, now: time.Now} }

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	now := time.Now
	if l.now != nil {
		now = l.now
	}
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(l.w, now().Format(time.RFC3339)+" ["+level+"] "+component+": "+msg+"\n")
}
