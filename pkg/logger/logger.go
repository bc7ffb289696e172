// Package logger provides structured logging utilities.
//
// It wraps a single logrus logger behind printf-style helpers so call sites
// stay short, and exposes the underlying logger for components (gorm, gin)
// that need an io.Writer or Printf sink.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newDefault()

func newDefault() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Fields is an alias so callers need not import logrus.
type Fields = logrus.Fields

// Initialize configures the level and output format.
// Development mode uses a human readable text format with caller info;
// otherwise entries are emitted as JSON.
func Initialize(level string, development bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	std.SetLevel(lvl)

	if development {
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		std.SetReportCaller(true)
	} else {
		std.SetFormatter(&logrus.JSONFormatter{})
		std.SetReportCaller(false)
	}
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Logger returns the underlying logrus logger.
func Logger() *logrus.Logger {
	return std
}

// WithFields returns an entry carrying structured fields.
func WithFields(fields Fields) *logrus.Entry {
	return std.WithFields(fields)
}

// Debug logs debug messages.
func Debug(message string, args ...any) {
	std.Debugf(message, args...)
}

// Info logs informational messages.
func Info(message string, args ...any) {
	std.Infof(message, args...)
}

// Warn logs warning messages.
func Warn(message string, args ...any) {
	std.Warnf(message, args...)
}

// Error logs error messages.
func Error(message string, args ...any) {
	std.Errorf(message, args...)
}

// Fatal logs fatal messages and terminates the program.
func Fatal(message string, args ...any) {
	std.Fatalf(message, args...)
}

// Sync flushes buffered entries. logrus writes synchronously, so this only
// exists to keep shutdown code symmetric.
func Sync() {}
