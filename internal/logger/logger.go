// Package logger is a small leveled logger for contacto.
//
// Output is discarded unless CONTACTO_LOG_FILE (or log_file in config) names a
// file, so log lines never land on the terminal the TUI is drawing to.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the upper-case name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel parses a case-insensitive level name.
// Unknown names return LevelInfo and an error.
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return LevelInfo, fmt.Errorf("invalid log level: %s", s)
}

// sink is the shared output of a logger and its named children.
type sink struct {
	mu    sync.Mutex
	level Level
	out   *log.Logger
	file  *os.File
}

// Logger writes leveled, optionally component-tagged lines to a sink.
type Logger struct {
	component string
	sink      *sink
}

// Default is the process-wide logger used by the package-level functions.
var Default = New()

// New creates a logger configured from CONTACTO_LOG_LEVEL and CONTACTO_LOG_FILE.
func New() *Logger {
	l := &Logger{sink: &sink{
		level: LevelInfo,
		out:   log.New(io.Discard, "", log.LstdFlags),
	}}
	_ = l.Configure(os.Getenv("CONTACTO_LOG_LEVEL"), os.Getenv("CONTACTO_LOG_FILE"))
	return l
}

// Configure applies a level name and a log file path. Empty values leave the
// current setting untouched. A new file replaces (and closes) the previous one.
func (l *Logger) Configure(level, path string) error {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level != "" {
		parsed, err := ParseLevel(level)
		if err != nil {
			return err
		}
		s.level = parsed
	}

	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	if s.file != nil {
		_ = s.file.Close()
	}
	s.file = f
	s.out.SetOutput(f)
	return nil
}

// Named returns a child logger that prefixes every line with component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{component: component, sink: l.sink}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.out.SetOutput(io.Discard)
	return err
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level Level) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.level = level
}

// SetOutput redirects output, mostly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.out.SetOutput(w)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(LevelError, format, v...) }

func (l *Logger) log(level Level, format string, v ...interface{}) {
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()

	if level < s.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	if l.component != "" {
		s.out.Printf("[%s] %s: %s", level, l.component, msg)
		return
	}
	s.out.Printf("[%s] %s", level, msg)
}

// Debug logs a debug message using the default logger
func Debug(format string, v ...interface{}) { Default.Debug(format, v...) }

// Info logs an info message using the default logger
func Info(format string, v ...interface{}) { Default.Info(format, v...) }

// Warn logs a warning message using the default logger
func Warn(format string, v ...interface{}) { Default.Warn(format, v...) }

// Error logs an error message using the default logger
func Error(format string, v ...interface{}) { Default.Error(format, v...) }

// Configure configures the default logger.
func Configure(level, path string) error { return Default.Configure(level, path) }

// Named returns a component logger sharing the default logger's output.
func Named(component string) *Logger { return Default.Named(component) }

// Close closes the default logger
func Close() error { return Default.Close() }
