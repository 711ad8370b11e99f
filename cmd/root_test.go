package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestEnvFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("env")
	if flag == nil {
		t.Fatal("--env flag not found")
	}
	if flag.DefValue != "" {
		t.Errorf("--env default = %q, want empty", flag.DefValue)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"generate", "sessions", "signout", "features"} {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "dryink 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-01") {
		t.Errorf("versionTemplate() = %q, want commit and date", got)
	}
}

func TestLoadSession(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is signed out", func(t *testing.T) {
		sess, err := loadSession(filepath.Join(dir, "none.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.SignedIn() {
			t.Error("expected signed out")
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeSessionFile(t, dir, "tok-1")
		sess, err := loadSession(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sess.SignedIn() || sess.DisplayName() != "Ada" {
			t.Errorf("unexpected session %+v", sess)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := loadSession(path); err == nil {
			t.Error("expected an error for a corrupt session file")
		}
	})
}
