package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/auth"
	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/generation"
	"github.com/dryink/dryink/internal/keys"
)

// fakeBackend answers generation calls from a queue of outcomes.
type fakeBackend struct {
	mu       sync.Mutex
	outcomes []generation.Outcome
	requests []generation.Request
	tokens   []string

	sessions []backend.ChatSession
	listErr  error
	lists    int
}

func (f *fakeBackend) Generate(_ context.Context, token string, req generation.Request) generation.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.tokens = append(f.tokens, token)
	if len(f.outcomes) == 0 {
		return generation.TransportFailed{}
	}
	out := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return out
}

func (f *fakeBackend) ListSessions(_ context.Context, _ string) ([]backend.ChatSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	return f.sessions, f.listErr
}

func (f *fakeBackend) queue(out ...generation.Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, out...)
}

func (f *fakeBackend) sentRequests() []generation.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]generation.Request(nil), f.requests...)
}

func generated(sessionID, url, response string) generation.Generated {
	return generation.Generated{SessionID: sessionID, VideoURL: url, GeneratedResponse: response}
}

func testSessionList() []backend.ChatSession {
	return []backend.ChatSession{
		{ID: "sess-1", Date: "2026-02-01", Chats: []backend.Chat{
			{ID: "c1", Prompt: "A paper boat", Response: "boat v1", GenURL: "https://cdn.example.com/boat1.mp4"},
			{ID: "c2", Prompt: "Make it rain", Response: "boat v2", GenURL: "https://cdn.example.com/boat2.mp4"},
		}},
		{ID: "sess-2", Date: "2026-02-02", Chats: []backend.Chat{
			{ID: "c3", Prompt: "Volcano cross-section", Response: "lava", GenURL: "https://cdn.example.com/volcano.mp4"},
		}},
	}
}

// testConfig creates a config saved under a temp dir with the welcome tour
// already seen.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.WelcomeShown = true
	return cfg
}

func signedInSession() *auth.Session {
	return &auth.Session{User: auth.User{Name: "Ada", Email: "ada@example.com", AccessToken: "tok-123"}}
}

// testModel creates a signed-in model backed by fb, sized to 120x40.
func testModel(t *testing.T, fb *fakeBackend) *Model {
	t.Helper()
	return testModelWith(t, testConfig(t), Deps{
		Backend:     fb,
		Session:     signedInSession(),
		SessionFile: filepath.Join(t.TempDir(), "session.json"),
	})
}

func testModelWith(t *testing.T, cfg *config.Config, deps Deps) *Model {
	t.Helper()
	m := New(cfg, deps, "0.0.0-test")
	t.Cleanup(m.cancel)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+z", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlN:
		return tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlP:
		return tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlZ:
		return tea.KeyPressMsg{Code: 'z', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press and returns the model and command.
func sendKey(m *Model, key string) (*Model, tea.Cmd) {
	result, cmd := m.Update(keyPress(key))
	return result.(*Model), cmd
}

// typeText simulates typing a string one character at a time.
func typeText(m *Model, text string) {
	for _, ch := range text {
		m.Update(tea.KeyPressMsg{Code: ch, Text: string(ch)})
	}
}

// collectMsgs runs cmd and returns the messages that arrive promptly.
// Batches are flattened; timer commands that outlast the wait are dropped.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collectMsgs(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// findMsg returns the first message of type T produced by cmd.
func findMsg[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, msg := range collectMsgs(cmd) {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// submit types prompt, presses enter and delivers the generation result.
func submit(t *testing.T, m *Model, prompt string) GenerationDoneMsg {
	t.Helper()
	typeText(m, prompt)
	_, cmd := sendKey(m, keys.Enter)
	done, ok := findMsg[GenerationDoneMsg](cmd)
	if !ok {
		t.Fatalf("submitting %q produced no GenerationDoneMsg", prompt)
	}
	m.Update(done)
	return done
}

// loadSessions runs the sidebar fetch the model would start on Init.
func loadSessions(t *testing.T, m *Model) {
	t.Helper()
	loaded, ok := findMsg[SessionsLoadedMsg](m.reloadSessions())
	if !ok {
		t.Fatal("reloadSessions produced no SessionsLoadedMsg")
	}
	m.Update(loaded)
}

// flashText returns the footer notice, or "" when none is showing.
func flashText(m *Model) string {
	if f := m.footer.Flash(); f != nil {
		return f.Text
	}
	return ""
}
