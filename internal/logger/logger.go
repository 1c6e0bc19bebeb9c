// Package logger provides structured JSON logging for the eventscout agents.
//
// Log entries are emitted as single-line JSON with a timestamp, level,
// message, and optional structured fields, so that agent activity (fetch
// attempts, per-source scrape results, cache decisions) can be grepped and
// parsed after the fact.
//
// Example:
//
//	logger.Info("Discovered events", logger.Fields{
//	    "source": "cncf",
//	    "count":  12,
//	})
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config string to a Level, defaulting to INFO.
func ParseLevel(raw string) Level {
	switch Level(raw) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return Level(raw)
	default:
		return LevelInfo
	}
}

// Fields holds structured log fields.
type Fields map[string]interface{}

// Entry is the JSON shape of a single log line.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes structured log entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	out      io.Writer
}

var defaultLogger = New(LevelInfo, os.Stdout)

// New creates a logger writing to out. Messages below level are discarded.
func New(level Level, out io.Writer) *Logger {
	return &Logger{minLevel: level, out: out}
}

// SetDefault replaces the package-level logger used by the convenience
// functions, centralizing configuration at startup.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		// Plain-text fallback so the entry is never silently lost
		fmt.Fprintf(l.out, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.out, string(data))
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }

// Info logs an operational message.
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields, nil) }

// Warn logs a recoverable problem.
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields, nil) }

// Error logs a failure together with its error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger.

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}
