// Package logger provides the process-wide structured logger.
//
// The TUI logs to a file so nothing reaches the terminal while Bubble Tea owns
// it. Subcommands that print to stdout use InitConsole instead, which renders
// records through clog on stderr.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/m-mizutani/clog"
)

// DefaultLogPath is the log file used by the interactive dashboard.
const DefaultLogPath = "/tmp/dryink-debug.log"

type contextKey struct{}

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	logPath    string
	initDone   bool
	loggerKey  = contextKey{}
)

// SetDebug switches between debug and info level. Safe to call before Init.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens path for appending and routes all records there.
// A second call is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("logger initialized", "path", path)
	return nil
}

// InitConsole routes records to w using a colored console handler.
func InitConsole(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logPath = ""
	handler := clog.New(
		clog.WithWriter(w),
		clog.WithLevel(levelVar.Level()),
		clog.WithTimeFmt("15:04:05"),
		clog.WithSource(false),
	)
	slogLogger = slog.New(handler)
	initDone = true
}

// ensureInit falls back to DefaultLogPath. Callers must hold mu.
func ensureInit() {
	if initDone {
		return
	}
	f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
		slogLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		initDone = true
		return
	}
	logFile = f
	logPath = DefaultLogPath
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true
}

// Logger returns the root logger, initializing the default file if needed.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	ensureInit()
	return slogLogger
}

// WithComponent returns a logger tagged with component.
//
//	log := logger.WithComponent("backend")
//	log.Info("prompt accepted", "sessionID", id)
func WithComponent(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}

// WithSession returns a logger tagged with a backend session id.
func WithSession(sessionID string) *slog.Logger {
	return Logger().With(slog.String("sessionID", sessionID))
}

// With attaches l to ctx.
func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the logger stored in ctx, or the root logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return Logger()
}

func logf(level slog.Level, format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }
func Info(format string, args ...any)  { logf(slog.LevelInfo, format, args...) }
func Warn(format string, args ...any)  { logf(slog.LevelWarn, format, args...) }
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Path returns the file currently receiving records, or "" for console output.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Reset drops all state so Init can be called again. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	logPath = ""
	slogLogger = nil
	levelVar = new(slog.LevelVar)
}

// ClearLogs removes the dashboard log file. Returns the number of files removed.
func ClearLogs() (int, error) {
	if err := os.Remove(DefaultLogPath); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}
