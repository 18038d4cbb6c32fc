// Package logger writes leveled log lines to a file. The keypad owns the
// terminal, so nothing is ever logged to stdout or stderr.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelNone disables logging.
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name in any case. Unknown names are LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes timestamped lines at or above its level.
type Logger struct {
	mu     sync.RWMutex
	level  Level
	prefix string
	out    *output
	// owner is set on the logger that opened out.
	owner bool
}

// output is the destination shared by a logger and its prefixed children.
type output struct {
	mu     sync.Mutex
	logger *log.Logger
	file   *os.File
}

func (o *output) printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logger.Printf(format, args...)
}

var (
	globalMu sync.Mutex
	global   *Logger
)

// New creates a logger appending to the file at path. With LevelNone or an
// empty path, the logger discards everything and no file is created.
func New(level Level, path string) (*Logger, error) {
	l := &Logger{level: level, owner: true}
	if level == LevelNone || path == "" {
		l.level = LevelNone
		l.out = &output{logger: log.New(io.Discard, "", 0)}
		return l, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l.out = &output{logger: log.New(f, "", 0), file: f}
	return l, nil
}

// Init replaces the global logger.
func Init(level Level, path string) error {
	l, err := New(level, path)
	if err != nil {
		return err
	}
	globalMu.Lock()
	old := global
	global = l
	globalMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Global returns the global logger, which discards everything until Init.
func Global() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global, _ = New(LevelNone, "")
	}
	return global
}

// WithPrefix returns a logger sharing l's output whose lines are tagged with
// prefix, nested under any prefix l already has.
func (l *Logger) WithPrefix(prefix string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.prefix != "" {
		prefix = l.prefix + ":" + prefix
	}
	return &Logger{level: l.level, prefix: prefix, out: l.out}
}

// Level returns the minimum level l writes.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// SetLevel changes the minimum level l writes.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.RLock()
	lvl, prefix := l.level, l.prefix
	l.mu.RUnlock()
	if level < lvl || lvl == LevelNone {
		return
	}
	p := ""
	if prefix != "" {
		p = "[" + prefix + "] "
	}
	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.out.printf("%s [%s] %s%s", ts, level, p, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }

// Close closes the log file, if any. Every logger sharing the file,
// including those made by WithPrefix, discards output afterward. Closing a
// logger made by WithPrefix does nothing.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.owner {
		l.level = LevelNone
	}
	l.mu.Unlock()
	if !l.owner {
		return nil
	}
	o := l.out
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	o.logger = log.New(io.Discard, "", 0)
	return err
}

func Debug(format string, args ...any) { Global().Debug(format, args...) }
func Info(format string, args ...any)  { Global().Info(format, args...) }
func Warn(format string, args ...any)  { Global().Warn(format, args...) }
func Error(format string, args ...any) { Global().Error(format, args...) }
