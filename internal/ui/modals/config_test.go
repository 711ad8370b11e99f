package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/dryink/dryink/internal/landing"
)

func TestWelcomeState_RendersTour(t *testing.T) {
	s := NewWelcomeState()
	s.maxVisibleLines = 200
	out := ansi.Strip(s.Render())

	if !strings.Contains(out, "Welcome to Dryink!") {
		t.Error("expected title")
	}
	if !strings.Contains(out, landing.Headline) {
		t.Error("expected landing headline")
	}
	for _, step := range landing.Steps() {
		if !strings.Contains(out, step.Heading()) {
			t.Errorf("expected step %q", step.Heading())
		}
	}
}

func TestWelcomeState_Scroll(t *testing.T) {
	s := NewWelcomeState()
	s.maxVisibleLines = 3
	s.Render()

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.ScrollOffset != 0 {
		t.Errorf("scroll above top: offset = %d", s.ScrollOffset)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.ScrollOffset != 1 {
		t.Errorf("after down: offset = %d, want 1", s.ScrollOffset)
	}
	if !strings.Contains(s.Help(), "scroll") {
		t.Errorf("help should mention scrolling when content overflows, got %q", s.Help())
	}
}

func TestChangelogState_Render(t *testing.T) {
	s := NewChangelogState([]ChangelogEntry{
		{Version: "0.3.0", Date: "2026-10-01", Changes: []string{"Resume a session"}},
		{Version: "0.2.0", Changes: []string{"Desktop notifications"}},
	})
	out := ansi.Strip(s.Render())

	for _, want := range []string{"What's New", "v0.3.0 (2026-10-01)", "v0.2.0", "Resume a session", "Desktop notifications"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "scroll for more") {
		t.Error("short changelog should not show a scroll hint")
	}
}

func TestChangelogState_ScrollBounds(t *testing.T) {
	var changes []string
	for range 40 {
		changes = append(changes, "change")
	}
	s := NewChangelogState([]ChangelogEntry{{Version: "1.0.0", Changes: changes}})
	s.Render()

	for range 100 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	maxOffset := s.totalLines - s.maxVisibleLines
	if s.ScrollOffset != maxOffset {
		t.Errorf("offset = %d, want clamp at %d", s.ScrollOffset, maxOffset)
	}

	s.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if s.ScrollOffset != maxOffset-1 {
		t.Errorf("wheel up: offset = %d, want %d", s.ScrollOffset, maxOffset-1)
	}
	if !strings.Contains(ansi.Strip(s.Render()), "scroll for more") {
		t.Error("expected scroll hint")
	}
}

func TestSettingsState(t *testing.T) {
	themes := []ThemeOption{{Key: "dryink", Name: "Dryink"}, {Key: "nord", Name: "Nord"}}

	s := NewSettingsState(themes, "nord", true)
	if s.GetSelectedTheme() != "nord" {
		t.Errorf("selected theme = %q, want nord", s.GetSelectedTheme())
	}
	if s.ThemeChanged() {
		t.Error("theme should not be changed initially")
	}
	if !s.NotificationsEnabled {
		t.Error("notifications should start enabled")
	}
	if !strings.Contains(ansi.Strip(s.Render()), "Settings") {
		t.Error("expected title in render")
	}

	// Enter belongs to the app layer and must not change the form
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.ThemeChanged() {
		t.Error("enter must not change the theme")
	}
}

func TestSettingsState_UnknownThemeFallsBack(t *testing.T) {
	themes := []ThemeOption{{Key: "dryink", Name: "Dryink"}}
	s := NewSettingsState(themes, "missing", false)
	if s.GetSelectedTheme() != "dryink" {
		t.Errorf("selected theme = %q, want dryink", s.GetSelectedTheme())
	}
	if s.NotificationsEnabled {
		t.Error("notifications should start disabled")
	}
}
