package logx

import (
	"fmt"
	"io"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewLogger(LoadFromEnv()))
}

// SetDefaultLogger replaces the package-level logger
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// GetDefaultLogger returns the package-level logger
func GetDefaultLogger() *Logger {
	return defaultLogger.Load()
}

// SetLevel sets the log level for the default logger
func SetLevel(level Level) {
	GetDefaultLogger().SetLevel(level)
}

// SetOutput sets the output for the default logger
func SetOutput(w io.Writer) {
	GetDefaultLogger().SetOutput(w)
}

// Debug logs a debug level message
func Debug(msg string) { GetDefaultLogger().log(LevelDebug, msg, nil, nil) }

// Info logs an info level message
func Info(msg string) { GetDefaultLogger().log(LevelInfo, msg, nil, nil) }

// Warn logs a warning level message
func Warn(msg string) { GetDefaultLogger().log(LevelWarn, msg, nil, nil) }

// Error logs an error level message
func Error(msg string) { GetDefaultLogger().log(LevelError, msg, nil, nil) }

// Fatal logs a fatal level message and exits
func Fatal(msg string) {
	l := GetDefaultLogger()
	l.log(LevelFatal, msg, nil, nil)
	l.exit(1)
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) { Debug(fmt.Sprintf(format, args...)) }

// Infof logs a formatted info message
func Infof(format string, args ...interface{}) { Info(fmt.Sprintf(format, args...)) }

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) { Warn(fmt.Sprintf(format, args...)) }

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) { Error(fmt.Sprintf(format, args...)) }

// Fatalf logs a formatted fatal message and exits
func Fatalf(format string, args ...interface{}) { Fatal(fmt.Sprintf(format, args...)) }

// WithFields creates a new entry on the default logger
func WithFields(fields Fields) *Entry {
	return GetDefaultLogger().WithFields(fields)
}

// WithField creates a new entry with a single field
func WithField(key string, value interface{}) *Entry {
	return GetDefaultLogger().WithField(key, value)
}

// WithError creates a new entry with an error field
func WithError(err error) *Entry {
	return GetDefaultLogger().WithError(err)
}
