/*
Package logger implements a leveled logger on top of the standard log package.
*/
package logger

import (
	"io"
	"log"
)

// Log level prefixes.
const (
	INFO  = "[INFO] "
	WARN  = "[WARN] "
	ERROR = "[ERROR] "
	DEBUG = "[DEBUG] "
)

// Logger writes leveled log lines.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// New creates a logger writing to w. Debug lines are discarded unless debug is set.
func New(w io.Writer, debug bool) *Logger {
	debugWriter := io.Discard
	if debug {
		debugWriter = w
	}

	return &Logger{
		infoLogger:  log.New(w, INFO, log.Ldate|log.Ltime),
		warnLogger:  log.New(w, WARN, log.Ldate|log.Ltime),
		errorLogger: log.New(w, ERROR, log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, DEBUG, log.Ldate|log.Ltime),
	}
}

// Discard creates a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, false)
}

// Logging methods.
func (l *Logger) Info(format string, args ...any) {
	l.infoLogger.Printf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.warnLogger.Printf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.debugLogger.Printf(format, args...)
}
