package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the color of a footer notice.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient notice shown in place of the key bindings.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg time.Time

// FlashTick returns a command that checks flash expiry after a short delay.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterContext is what the footer needs to pick bindings.
type FooterContext struct {
	SidebarFocused bool
	HasSession     bool // a sidebar session is selected
	SearchMode     bool
	Generating     bool
	CanUndo        bool
	CanRedo        bool
	HasVideo       bool
	SignedIn       bool
}

// Footer represents the bottom footer bar with keybindings and notices
type Footer struct {
	width        int
	ctx          FooterContext
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the always-shown trailing bindings.
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows text for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any notice.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a notice is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current notice or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired drops an expired notice and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// contextBindings returns the bindings relevant to the current state.
func (f *Footer) contextBindings() []KeyBinding {
	c := f.ctx
	if c.SearchMode {
		return []KeyBinding{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "clear"},
			{Key: "↑/↓", Desc: "select"},
		}
	}

	var out []KeyBinding
	if c.SidebarFocused {
		if c.HasSession {
			out = append(out,
				KeyBinding{Key: "enter", Desc: "preview"},
				KeyBinding{Key: "r", Desc: "resume"},
				KeyBinding{Key: "d", Desc: "delete"},
			)
		}
		out = append(out, KeyBinding{Key: "/", Desc: "search"})
		if c.SignedIn {
			out = append(out, KeyBinding{Key: "S", Desc: "sign out"})
		}
	} else {
		if c.Generating {
			out = append(out, KeyBinding{Key: "…", Desc: "generating"})
		} else {
			out = append(out, KeyBinding{Key: "enter", Desc: "generate"})
		}
		out = append(out, KeyBinding{Key: "ctrl+p", Desc: "settings"})
		if c.CanUndo {
			out = append(out, KeyBinding{Key: "ctrl+z", Desc: "undo"})
		}
		if c.CanRedo {
			out = append(out, KeyBinding{Key: "ctrl+y", Desc: "redo"})
		}
		if c.HasVideo {
			out = append(out, KeyBinding{Key: "ctrl+o", Desc: "copy url"})
		}
	}
	return append(out, f.bindings...)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return f.renderFlash()
	}

	var parts []string
	for _, b := range f.contextBindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, sep)
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	style := lipgloss.NewStyle().Bold(true)
	switch f.flashMessage.Type {
	case FlashSuccess:
		icon, style = "✓", style.Foreground(ColorSuccess)
	case FlashWarning:
		icon, style = "!", style.Foreground(ColorWarning)
	case FlashError:
		icon, style = "✗", style.Foreground(ColorError)
	default:
		icon, style = "•", style.Foreground(ColorInfo)
	}
	content := style.Render(icon + " " + f.flashMessage.Text)
	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
