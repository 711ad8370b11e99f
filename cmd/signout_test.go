package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase YES", "YES\n", true},
		{"y with spaces", "  y  \n", true},
		{"no newline", "yes", true},
		{"lowercase n", "n\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"EOF", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if got := confirm(&out, strings.NewReader(tt.input), "Test?"); got != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if !strings.Contains(out.String(), "Test? [y/N]") {
				t.Errorf("prompt not written, got %q", out.String())
			}
		})
	}
}

type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read error")
}

func TestConfirm_ErrorReader(t *testing.T) {
	var out bytes.Buffer
	if confirm(&out, &errorReader{}, "Test?") {
		t.Error("a read error should not confirm")
	}
}

func setSignoutFlags(t *testing.T, yes, logs bool) {
	t.Helper()
	origYes, origLogs := skipConfirm, clearLogs
	t.Cleanup(func() { skipConfirm, clearLogs = origYes, origLogs })
	skipConfirm, clearLogs = yes, logs
}

func TestSignOut(t *testing.T) {
	setSignoutFlags(t, false, false)
	path := writeSessionFile(t, t.TempDir(), "tok")

	var out bytes.Buffer
	if err := signOutWithReader(&out, strings.NewReader("y\n"), path); err != nil {
		t.Fatalf("signOutWithReader: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}
	if !strings.Contains(out.String(), "ada@example.com") || !strings.Contains(out.String(), "Signed out.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestSignOut_Aborted(t *testing.T) {
	setSignoutFlags(t, false, false)
	path := writeSessionFile(t, t.TempDir(), "tok")

	var out bytes.Buffer
	if err := signOutWithReader(&out, strings.NewReader("n\n"), path); err != nil {
		t.Fatalf("signOutWithReader: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("declining should keep the session file")
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("expected Aborted, got:\n%s", out.String())
	}
}

func TestSignOut_SkipConfirm(t *testing.T) {
	setSignoutFlags(t, true, false)
	path := writeSessionFile(t, t.TempDir(), "tok")

	var out bytes.Buffer
	if err := signOutWithReader(&out, &errorReader{}, path); err != nil {
		t.Fatalf("signOutWithReader: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("--yes should remove without asking")
	}
}

func TestSignOut_CorruptFile(t *testing.T) {
	setSignoutFlags(t, true, false)
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := signOutWithReader(&out, strings.NewReader(""), path); err != nil {
		t.Fatalf("signOutWithReader: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("a corrupt session file should still be removed")
	}
}

func TestSignOut_NotSignedIn(t *testing.T) {
	setSignoutFlags(t, false, false)

	var out bytes.Buffer
	if err := signOutWithReader(&out, strings.NewReader("y\n"), filepath.Join(t.TempDir(), "none.json")); err != nil {
		t.Fatalf("signOutWithReader: %v", err)
	}
	if strings.TrimSpace(out.String()) != "Not signed in." {
		t.Errorf("unexpected output %q", out.String())
	}
}
