package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_ShowsTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)

	view := ansi.Strip(h.View())
	if !strings.HasPrefix(view, " dryink") {
		t.Errorf("Expected header to start with title, got %q", view)
	}
	if w := ansi.StringWidth(h.View()); w != 80 {
		t.Errorf("Expected header width 80, got %d", w)
	}
}

func TestHeader_SessionAndUser(t *testing.T) {
	h := NewHeader()
	h.SetWidth(80)
	h.SetSessionTitle("A ball rolling downhill")
	h.SetUserName("Ada")

	view := ansi.Strip(h.View())
	if !strings.Contains(view, "A ball rolling downhill") {
		t.Errorf("Expected session title in %q", view)
	}
	if !strings.Contains(view, "[Ada]") {
		t.Errorf("Expected user name in %q", view)
	}
}

func TestHeader_TruncatesLongTitle(t *testing.T) {
	h := NewHeader()
	h.SetWidth(40)
	h.SetSessionTitle(strings.Repeat("very long title ", 10))

	view := h.View()
	if w := ansi.StringWidth(view); w > 40 {
		t.Errorf("Header width %d exceeds 40", w)
	}
	if !strings.Contains(ansi.Strip(view), "dryink") {
		t.Error("Title must survive truncation")
	}
}

func TestHeader_ZeroWidth(t *testing.T) {
	h := NewHeader()
	_ = h.View()
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#4A3294", 0x4A, 0x32, 0x94},
		{"#FFFFFF", 255, 255, 255},
		{"bogus", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
