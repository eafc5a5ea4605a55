package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	cblog "github.com/charmbracelet/log"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a textual level ("debug", "info", "warn", "error").
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) cblevel() cblog.Level {
	switch l {
	case LevelDebug:
		return cblog.DebugLevel
	case LevelWarn:
		return cblog.WarnLevel
	case LevelError:
		return cblog.ErrorLevel
	default:
		return cblog.InfoLevel
	}
}

// Logger interface for structured logging
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
	Error(ctx context.Context, err error, msg string, fields ...interface{})

	With(fields ...interface{}) Logger
	WithComponent(component string) Logger
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level        LogLevel
	Format       string // "text", "json" or "logfmt"
	Output       io.Writer
	TimeFormat   string
	ReportCaller bool
	Component    string
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:      LevelInfo,
		Format:     "text",
		Output:     os.Stderr,
		TimeFormat: time.Kitchen,
	}
}

// StyleLogger implements Logger on top of charmbracelet/log
type StyleLogger struct {
	logger    *cblog.Logger
	component string
}

// NewLogger creates a new structured logger
func NewLogger(config *LoggerConfig) *StyleLogger {
	if config == nil {
		config = DefaultConfig()
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	base := cblog.NewWithOptions(out, cblog.Options{
		Level:           config.Level.cblevel(),
		TimeFormat:      config.TimeFormat,
		ReportTimestamp: config.TimeFormat != "",
		ReportCaller:    config.ReportCaller,
		Formatter:       formatter(config.Format),
	})

	return &StyleLogger{
		logger:    base,
		component: config.Component,
	}
}

func formatter(format string) cblog.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return cblog.JSONFormatter
	case "logfmt":
		return cblog.LogfmtFormatter
	default:
		return cblog.TextFormatter
	}
}

// Debug logs a debug message
func (l *StyleLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, nil, msg, fields...)
}

// Info logs an info message
func (l *StyleLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, nil, msg, fields...)
}

// Warn logs a warning message
func (l *StyleLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, err, msg, fields...)
}

// Error logs an error message
func (l *StyleLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, err, msg, fields...)
}

// With creates a new logger with additional fields
func (l *StyleLogger) With(fields ...interface{}) Logger {
	return &StyleLogger{
		logger:    l.logger.With(evenFields(fields)...),
		component: l.component,
	}
}

// WithComponent creates a new logger with component context
func (l *StyleLogger) WithComponent(component string) Logger {
	return &StyleLogger{
		logger:    l.logger,
		component: component,
	}
}

func (l *StyleLogger) log(_ context.Context, level cblog.Level, err error, msg string, fields ...interface{}) {
	attrs := make([]interface{}, 0, len(fields)+4)

	if l.component != "" {
		attrs = append(attrs, "component", l.component)
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	attrs = append(attrs, evenFields(fields)...)

	l.logger.Log(level, msg, attrs...)
}

// evenFields drops a dangling key and any non-string keys.
func evenFields(fields []interface{}) []interface{} {
	out := make([]interface{}, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			out = append(out, key, fields[i+1])
		}
	}
	return out
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return NewLogger(&LoggerConfig{Level: LevelError, Output: io.Discard})
}

// PerfLogger tracks how long an operation took
type PerfLogger struct {
	Logger
	startTime time.Time
	operation string
}

// StartOperation begins performance tracking
func StartOperation(logger Logger, operation string) *PerfLogger {
	return &PerfLogger{
		Logger:    logger.With("operation", operation),
		startTime: time.Now(),
		operation: operation,
	}
}

// End completes performance tracking and logs the duration
func (p *PerfLogger) End(ctx context.Context) {
	duration := time.Since(p.startTime)
	p.Debug(ctx, "Operation completed",
		"duration_ms", duration.Milliseconds(),
	)
}

// EndWithError completes performance tracking and logs an error
func (p *PerfLogger) EndWithError(ctx context.Context, err error) {
	duration := time.Since(p.startTime)
	p.Error(ctx, err, "Operation failed",
		"duration_ms", duration.Milliseconds(),
	)
}
