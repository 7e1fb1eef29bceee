package util

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LogFormat represents the output format
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// ParseLogFormat validates a log format name.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want text or json)", s)
	}
}

// Output represents a log output destination
type Output interface {
	Write(entry LogEntry) error
	Close() error
}

// LogEntry represents a single log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger provides structured logging functionality
type Logger struct {
	level   LogLevel
	outputs []Output
	fields  map[string]interface{}
	mu      sync.RWMutex
}

// LoggerInterface defines the public interface for logging
type LoggerInterface interface {
	Debug(msg string, fields ...Field)
	Debugf(format string, args ...interface{})
	Info(msg string, fields ...Field)
	Infof(format string, args ...interface{})
	Warn(msg string, fields ...Field)
	Warnf(format string, args ...interface{})
	Error(msg string, fields ...Field)
	Errorf(format string, args ...interface{})
	With(fields ...Field) LoggerInterface
	SetLevel(level LogLevel)
	AddOutput(output Output)
	Close() error
}

// LoggerOptions selects where log entries go.
type LoggerOptions struct {
	Level   string
	File    string
	Console bool
	Format  LogFormat
}

// NewLogger creates a logger writing to the outputs named in opts. A logger
// without outputs silently drops every entry.
func NewLogger(opts LoggerOptions) (*Logger, error) {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	logger := &Logger{
		level:   parseLogLevel(opts.Level),
		outputs: make([]Output, 0),
		fields:  make(map[string]interface{}),
	}

	if opts.Console {
		logger.AddOutput(NewConsoleOutput(os.Stderr, format))
	}

	if opts.File != "" {
		fileOutput, err := NewFileOutput(opts.File, format)
		if err != nil {
			return nil, fmt.Errorf("failed to create file output for %s: %w", opts.File, err)
		}
		logger.AddOutput(fileOutput)
	}

	return logger, nil
}

// parseLogLevel parses a log level string
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// levelToString converts LogLevel to string
func levelToString(level LogLevel) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// log writes a log entry to all outputs
func (l *Logger) log(level LogLevel, msg string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.level > level || len(l.outputs) == 0 {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     levelToString(level),
		Message:   msg,
		Fields:    make(map[string]interface{}, len(l.fields)+len(fields)),
	}

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, field := range fields {
		entry.Fields[field.Key] = field.Value
	}

	for _, output := range l.outputs {
		if err := output.Write(entry); err != nil {
			log.Printf("Failed to write log entry: %v", err)
		}
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

// With returns a new logger with additional fields
func (l *Logger) With(fields ...Field) LoggerInterface {
	l.mu.RLock()
	defer l.mu.RUnlock()

	newFields := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, field := range fields {
		newFields[field.Key] = field.Value
	}

	return &Logger{
		level:   l.level,
		outputs: l.outputs,
		fields:  newFields,
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// AddOutput adds a new output destination
func (l *Logger) AddOutput(output Output) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.outputs = append(l.outputs, output)
}

// Close closes every output.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error
	for _, output := range l.outputs {
		if err := output.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.outputs = nil
	return firstErr
}
