package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesToFile(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("hello %s", "file")

	if !strings.Contains(readLog(t, logPath), "hello file") {
		t.Error("log file should contain the logged message")
	}
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)
	other := filepath.Join(t.TempDir(), "other.log")

	if err := Init(other); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	if Path() != logPath {
		t.Errorf("Path() changed to %q after second Init", Path())
	}
	if _, err := os.Stat(other); !os.IsNotExist(err) {
		t.Error("second Init should not create a file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-line")
	SetDebug(true)
	Debug("visible-debug-line")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-line") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(content, "visible-debug-line") {
		t.Error("debug message should be written after SetDebug(true)")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("backend").Info("prompt accepted", "sessionID", "sess-1")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=backend") {
		t.Errorf("expected component attribute, got:\n%s", content)
	}
	if !strings.Contains(content, "sessionID=sess-1") {
		t.Errorf("expected sessionID attribute, got:\n%s", content)
	}
}

func TestWithSession(t *testing.T) {
	logPath := setupTestLogger(t)

	WithSession("abc").Warn("follow-up")

	if !strings.Contains(readLog(t, logPath), "sessionID=abc") {
		t.Error("expected sessionID attribute")
	}
}

func TestContextLogger(t *testing.T) {
	setupTestLogger(t)

	if From(context.Background()) == nil {
		t.Fatal("From() without a stored logger should return the root logger")
	}

	tagged := WithComponent("ctx")
	ctx := With(context.Background(), tagged)
	if From(ctx) != tagged {
		t.Error("From() should return the logger stored in the context")
	}
}

func TestInitConsole(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	InitConsole(&buf)
	Info("console-line")

	if !strings.Contains(buf.String(), "console-line") {
		t.Errorf("console output missing message: %q", buf.String())
	}
	if Path() != "" {
		t.Errorf("Path() = %q, want empty for console output", Path())
	}
}

func TestClose(t *testing.T) {
	setupTestLogger(t)
	Close()

	// Logging after Close is dropped, not a panic.
	Info("after close")
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	Reset()
	t.Cleanup(Reset)

	logPath1 := filepath.Join(tmpDir, "log1.log")
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 has wrong content:\n%s", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 has wrong content:\n%s", content2)
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Info("concurrent %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}
