package modals

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/landing"
)

// =============================================================================
// WelcomeState - first-run product tour
// =============================================================================

type WelcomeState struct {
	ScrollOffset    int
	maxVisibleLines int
	totalLines      int
}

func (*WelcomeState) modalState() {}

func (s *WelcomeState) PreferredWidth() int { return WideWidth }

func (s *WelcomeState) Title() string { return "Welcome to Dryink!" }

func (s *WelcomeState) Help() string {
	if s.totalLines > s.maxVisibleLines {
		return "up/down scroll  Enter/Esc: get started"
	}
	return "Press Enter or Esc to get started"
}

func (s *WelcomeState) Render() string {
	title := look.Title.Render(s.Title())

	tour := strings.Split(strings.TrimRight(landing.Render(WideWidth-8), "\n"), "\n")
	shortcuts := lipgloss.NewStyle().
		Foreground(look.Muted).
		MarginTop(1).
		Render("Type a prompt and press Enter. p: video settings  ?: all shortcuts")
	lines := append(tour, strings.Split(shortcuts, "\n")...)
	s.totalLines = len(lines)

	end := min(len(lines), s.ScrollOffset+s.maxVisibleLines)
	visible := lines[min(s.ScrollOffset, end):end]

	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(visible, "\n"), help)
}

func (s *WelcomeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	maxOffset := max(0, s.totalLines-s.maxVisibleLines)
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			s.ScrollOffset = max(0, s.ScrollOffset-1)
		case keys.Down, "j":
			s.ScrollOffset = min(maxOffset, s.ScrollOffset+1)
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp {
			s.ScrollOffset = max(0, s.ScrollOffset-1)
		} else if msg.Button == tea.MouseWheelDown {
			s.ScrollOffset = min(maxOffset, s.ScrollOffset+1)
		}
	}
	return s, nil
}

// NewWelcomeState creates a new WelcomeState
func NewWelcomeState() *WelcomeState {
	return &WelcomeState{maxVisibleLines: ChangelogVisible + 8}
}

// =============================================================================
// ChangelogState - State for the "What's New" changelog modal
// =============================================================================

type ChangelogState struct {
	Entries         []ChangelogEntry
	ScrollOffset    int
	maxVisibleLines int
	totalLines      int
}

func (*ChangelogState) modalState() {}

func (s *ChangelogState) Title() string { return "What's New" }

func (s *ChangelogState) Help() string {
	if s.totalLines > s.maxVisibleLines {
		return "up/down scroll  Enter/Esc: dismiss"
	}
	return "Press Enter or Esc to dismiss"
}

func (s *ChangelogState) Render() string {
	title := look.Title.Render(s.Title())

	// One element per visual line so scrolling works after wrapping
	var allLines []string
	for i, entry := range s.Entries {
		if i > 0 {
			allLines = append(allLines, "")
		}

		header := "v" + entry.Version
		if entry.Date != "" {
			header += " (" + entry.Date + ")"
		}
		allLines = append(allLines, lipgloss.NewStyle().Bold(true).Foreground(look.Primary).Render(header))

		bullet := lipgloss.NewStyle().Foreground(look.Secondary).Render("  - ")
		for _, change := range entry.Changes {
			wrapped := lipgloss.NewStyle().
				Foreground(look.Text).
				Width(Width - 12).
				Render(change)
			for j, line := range strings.Split(wrapped, "\n") {
				if j == 0 {
					allLines = append(allLines, bullet+line)
				} else {
					allLines = append(allLines, "    "+line)
				}
			}
		}
	}
	s.totalLines = len(allLines)

	end := min(len(allLines), s.ScrollOffset+s.maxVisibleLines)
	content := strings.Join(allLines[min(s.ScrollOffset, end):end], "\n")

	if s.totalLines > s.maxVisibleLines {
		content += "\n" + lipgloss.NewStyle().
			Foreground(look.Muted).
			Italic(true).
			MarginTop(1).
			Render("(scroll for more)")
	}

	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *ChangelogState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	maxOffset := max(0, s.totalLines-s.maxVisibleLines)
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			if s.ScrollOffset > 0 {
				s.ScrollOffset--
			}
		case keys.Down, "j":
			if s.ScrollOffset < maxOffset {
				s.ScrollOffset++
			}
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp && s.ScrollOffset > 0 {
			s.ScrollOffset--
		} else if msg.Button == tea.MouseWheelDown && s.ScrollOffset < maxOffset {
			s.ScrollOffset++
		}
	}
	return s, nil
}

// NewChangelogState creates a new ChangelogState
func NewChangelogState(entries []ChangelogEntry) *ChangelogState {
	return &ChangelogState{
		Entries:         entries,
		maxVisibleLines: ChangelogVisible,
	}
}

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

type SettingsState struct {
	selectedTheme        string
	OriginalTheme        string
	NotificationsEnabled bool

	generalOptions []string

	form           *huh.Form
	availableWidth int
}

const optionNotifications = "notifications"

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return WideWidth }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return WideWidth - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := look.Title.Render(s.Title())
	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// NewSettingsState builds the settings form. currentTheme must be one of
// themes' keys; anything else falls back to the first option.
func NewSettingsState(themes []ThemeOption, currentTheme string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
	}
	if !slices.ContainsFunc(themes, func(t ThemeOption) bool { return t.Key == currentTheme }) && len(themes) > 0 {
		s.selectedTheme = themes[0].Key
		s.OriginalTheme = themes[0].Key
	}
	if notificationsEnabled {
		s.generalOptions = []string{optionNotifications}
	}

	themeOptions := make([]huh.Option[string], 0, len(themes))
	for _, t := range themes {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Key))
	}

	s.form = newForm(s.contentWidth(), huh.LayoutStack,
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("General").
			Options(huh.NewOption("Desktop notification when a video is ready", optionNotifications)).
			Value(&s.generalOptions),
	)

	return s
}
