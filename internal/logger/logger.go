// Package logger writes leveled, structured log lines to a file. Console
// output is deliberately absent: stdout belongs to the TUI, and persistence
// failures are fire-and-forget events that must never block or repaint the
// screen.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return DEBUG
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand for creating a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger appends log lines to a single file.
type Logger struct {
	mu    sync.Mutex
	level Level
	file  *os.File
}

// New opens (or creates) the log file at path. An empty path returns a logger
// that discards everything.
func New(path string, level Level) (*Logger, error) {
	l := &Logger{level: level}
	if path == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = file
	return l, nil
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if l == nil || l.file == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05.000"), level, msg)
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	fmt.Fprintln(l.file, line)
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(DEBUG, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(INFO, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(WARN, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(ERROR, msg, fields) }

func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

var (
	global *Logger
	once   sync.Once
)

// Init sets up the package-level logger used across the app.
func Init(path string, level Level) error {
	var err error
	once.Do(func() {
		global, err = New(path, level)
	})
	return err
}

func Debug(msg string, fields ...Field) { global.log(DEBUG, msg, fields) }
func Info(msg string, fields ...Field)  { global.log(INFO, msg, fields) }
func Warn(msg string, fields ...Field)  { global.log(WARN, msg, fields) }
func Error(msg string, fields ...Field) { global.log(ERROR, msg, fields) }

// Close closes the package-level logger.
func Close() error {
	return global.Close()
}
