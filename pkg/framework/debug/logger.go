// Package debug provides the leveled logger used across synthmap.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelFatal is for fatal errors. Fatal panics after logging.
	LogLevelFatal
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelFatal:
		return "FATAL"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel accepts the names returned by String in any case.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO", "":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "FATAL":
		return LogLevelFatal, nil
	case "OFF":
		return LogLevelOff, nil
	}
	return LogLevelInfo, fmt.Errorf("debug: unknown log level %q", s)
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelFatal:
		return zapcore.FatalLevel
	case LogLevelOff:
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}

// Logger is a printf-style leveled logger on top of zap.
type Logger struct {
	sugar   *zap.SugaredLogger
	level   zap.AtomicLevel
	enabled *atomic.Bool
}

// Flags for logger output formatting. They only apply to loggers built by New.
const (
	FlagTime      = 1 << iota // Include timestamp
	FlagShortFile             // Include short file name and line number
	FlagLongFile              // Include full file path and line number
	FlagLevel                 // Include log level
	FlagPrefix                // Include prefix
)

// DefaultFlags are the default formatting flags.
const DefaultFlags = FlagTime | FlagShortFile | FlagLevel | FlagPrefix

// Debug/Info/... and log sit between the caller and zap.
const callerSkip = 2

var defaultLogger atomic.Pointer[Logger]

func init() {
	l := New(os.Stderr, "", DefaultFlags)
	l.SetLevel(LogLevelInfo)
	defaultLogger.Store(l)
}

// New creates a console logger writing to output.
func New(output io.Writer, prefix string, flags int) *Logger {
	encCfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if flags&FlagTime != 0 {
		encCfg.TimeKey = "time"
	}
	if flags&FlagLevel != 0 {
		encCfg.LevelKey = "level"
	}
	if flags&FlagPrefix != 0 {
		encCfg.NameKey = "name"
	}
	var opts []zap.Option
	if flags&(FlagShortFile|FlagLongFile) != 0 {
		encCfg.CallerKey = "caller"
		if flags&FlagLongFile != 0 && flags&FlagShortFile == 0 {
			encCfg.EncodeCaller = zapcore.FullCallerEncoder
		}
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	}

	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(output), level)
	return newLogger(zap.New(core, opts...), prefix, level)
}

// NewWithCore wraps an existing zap core, e.g. an observer in tests. The
// core's own level still applies on top of SetLevel.
func NewWithCore(core zapcore.Core, prefix string) *Logger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return newLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(callerSkip)), prefix, level)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return newLogger(zap.NewNop(), "", zap.NewAtomicLevelAt(zapcore.FatalLevel+1))
}

func newLogger(z *zap.Logger, prefix string, level zap.AtomicLevel) *Logger {
	z = z.WithOptions(zap.WithFatalHook(zapcore.WriteThenPanic))
	if prefix != "" {
		z = z.Named(prefix)
	}
	enabled := new(atomic.Bool)
	enabled.Store(true)
	return &Logger{sugar: z.Sugar(), level: level, enabled: enabled}
}

// With returns a child logger that adds the key/value pairs to every entry.
// The child shares the parent's level and enabled switch.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(keysAndValues...), level: l.level, enabled: l.enabled}
}

// Named returns a child logger with name appended to the prefix.
func (l *Logger) Named(name string) *Logger {
	return &Logger{sugar: l.sugar.Named(name), level: l.level, enabled: l.enabled}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

// Level returns the current minimum log level.
func (l *Logger) Level() LogLevel {
	switch l.level.Level() {
	case zapcore.DebugLevel:
		return LogLevelDebug
	case zapcore.InfoLevel:
		return LogLevelInfo
	case zapcore.WarnLevel:
		return LogLevelWarn
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel:
		return LogLevelError
	case zapcore.FatalLevel:
		return LogLevelFatal
	default:
		return LogLevelOff
	}
}

// SetEnabled enables or disables the logger.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// IsEnabled returns whether the logger is enabled.
func (l *Logger) IsEnabled() bool {
	return l.enabled.Load()
}

// Enabled reports whether a message at level would be written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l.enabled.Load() && level < LogLevelOff && l.level.Enabled(level.zapLevel())
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	switch level {
	case LogLevelDebug:
		l.sugar.Debugf(format, args...)
	case LogLevelInfo:
		l.sugar.Infof(format, args...)
	case LogLevelWarn:
		l.sugar.Warnf(format, args...)
	case LogLevelError:
		l.sugar.Errorf(format, args...)
	case LogLevelFatal:
		l.sugar.Fatalf(format, args...)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

// Fatal logs a fatal error message and panics, even when logging is off.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(LogLevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Global logger functions

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the default logger. A nil logger is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level LogLevel) {
	Default().SetLevel(level)
}

// SetEnabled enables or disables the default logger.
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	Default().log(LogLevelDebug, format, args...)
}

// Info logs an informational message using the default logger.
func Info(format string, args ...interface{}) {
	Default().log(LogLevelInfo, format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	Default().log(LogLevelWarn, format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	Default().log(LogLevelError, format, args...)
}

// Fatal logs a fatal error message using the default logger and panics.
func Fatal(format string, args ...interface{}) {
	Default().log(LogLevelFatal, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Conditional logging helpers

// DebugIf logs a debug message if the condition is true.
func DebugIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().log(LogLevelDebug, format, args...)
	}
}

// WarnIf logs a warning message if the condition is true.
func WarnIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().log(LogLevelWarn, format, args...)
	}
}

// ErrorIf logs an error message if the condition is true.
func ErrorIf(condition bool, format string, args ...interface{}) {
	if condition {
		Default().log(LogLevelError, format, args...)
	}
}
