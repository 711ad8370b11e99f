package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/app"
	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/generation"
)

type fakeBackend struct {
	mu       sync.Mutex
	outcome  generation.Outcome
	requests []generation.Request
	sessions []backend.ChatSession
	listErr  error
}

func (f *fakeBackend) Generate(_ context.Context, _ string, req generation.Request) generation.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.outcome == nil {
		return generation.TransportFailed{}
	}
	return f.outcome
}

func (f *fakeBackend) ListSessions(_ context.Context, _ string) ([]backend.ChatSession, error) {
	return f.sessions, f.listErr
}

func writeSessionFile(t *testing.T, dir, token string) string {
	t.Helper()
	path := filepath.Join(dir, "session-"+token+".json")
	data := `{"user":{"name":"Ada","email":"ada@example.com","accessToken":"` + token + `"}}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

// useFakeBackend points the environment at a temp session file and routes
// commands to fb. It returns the session file path.
func useFakeBackend(t *testing.T, fb *fakeBackend, signedIn bool) string {
	t.Helper()
	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "session.json")
	if signedIn {
		sessionFile = writeSessionFile(t, dir, "tok-123")
	}
	t.Setenv("BACKEND_BASE_URL", "https://api.example.com")
	t.Setenv("DRYINK_SESSION_FILE", sessionFile)

	orig := newBackend
	newBackend = func(config.Env) app.Backend { return fb }
	t.Cleanup(func() { newBackend = orig })
	return sessionFile
}

// testCommand returns a command whose output is captured in the buffer.
func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	c.SetContext(context.Background())
	return c, &buf
}
