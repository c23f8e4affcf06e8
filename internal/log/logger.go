// Package log wraps logrus with the small package-level surface the rest of
// the application uses, plus a callback hook that forwards leveled messages
// (info/success/warning/error) to whichever shell is hosting a run.
package log

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level identifies the severity of a forwarded message. These are the levels
// the engine's log callback contract exposes upward.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Callback receives every message emitted through this package.
type Callback func(level Level, message string)

var (
	logger = newLogger()

	mu       sync.RWMutex
	callback Callback
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// SetDebug enables or disables debug output.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetCallback installs a sink for forwarded messages. Pass nil to detach.
func SetCallback(cb Callback) {
	mu.Lock()
	callback = cb
	mu.Unlock()
}

func forward(level Level, message string) {
	mu.RLock()
	cb := callback
	mu.RUnlock()
	if cb != nil {
		cb(level, message)
	}
}

// Field is a single structured log field.
type Field struct {
	Key   string
	Value interface{}
}

// F constructs a Field for use with LogWithFields.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogWithFields returns an entry carrying the given structured fields.
func LogWithFields(fields ...Field) *logrus.Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return logger.WithFields(lf)
}

// Info logs a formatted informational message.
func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
	forward(LevelInfo, sprintf(format, args...))
}

// Success logs a formatted message describing a completed action. logrus has
// no success level, so it is recorded as info with a marker field.
func Success(format string, args ...interface{}) {
	logger.WithField("outcome", "success").Infof(format, args...)
	forward(LevelSuccess, sprintf(format, args...))
}

// Warn logs a formatted warning message.
func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
	forward(LevelWarning, sprintf(format, args...))
}

// Error logs a formatted error message.
func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
	forward(LevelError, sprintf(format, args...))
}

// Debug logs a formatted debug message. Debug messages are not forwarded to
// the callback sink.
func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
