package notification

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	titles   []string
	messages []string
	err      error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.titles = append(m.titles, title)
	m.messages = append(m.messages, message)
	return m.err
}

func useMock(t *testing.T, m *mockNotification) {
	t.Helper()
	orig := notify
	notify = m.notify
	t.Cleanup(func() { notify = orig })
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		mockErr     error
		expectError bool
	}{
		{"successful notification", nil, false},
		{"notification error", errors.New("dbus unavailable"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockNotification{err: tt.mockErr}
			useMock(t, m)

			err := Send("Title", "Body")
			if (err != nil) != tt.expectError {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(m.titles) != 1 || m.titles[0] != "Title" || m.messages[0] != "Body" {
				t.Errorf("unexpected calls: %v %v", m.titles, m.messages)
			}
		})
	}
}

func TestGenerationReady(t *testing.T) {
	m := &mockNotification{}
	useMock(t, m)

	if err := GenerationReady("a cat walking"); err != nil {
		t.Fatalf("GenerationReady() error = %v", err)
	}
	if m.titles[0] != "Dryink" {
		t.Errorf("title = %q, want Dryink", m.titles[0])
	}
	if m.messages[0] != "a cat walking is ready" {
		t.Errorf("message = %q", m.messages[0])
	}
}

func TestGenerationReady_LongPrompt(t *testing.T) {
	m := &mockNotification{}
	useMock(t, m)

	GenerationReady(strings.Repeat("é", 200))

	msg := strings.TrimSuffix(m.messages[0], " is ready")
	if n := utf8.RuneCountInString(msg); n != maxPromptLen {
		t.Errorf("shortened prompt has %d runes, want %d", n, maxPromptLen)
	}
	if !strings.HasSuffix(msg, "…") {
		t.Error("shortened prompt should end with an ellipsis")
	}
}
