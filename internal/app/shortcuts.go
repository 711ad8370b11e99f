package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/ui"
	"github.com/dryink/dryink/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "d", "ctrl+z")
	DisplayKey      string                              // Display name in help (e.g., "ctrl-z"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSession bool                                // Must have a sidebar session selected
	RequiresSidebar bool                                // Only while the sidebar is focused
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategorySessions   = "Sessions"
	CategoryVideo      = "Video"
	CategorySettings   = "Settings"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategorySessions,
	CategoryVideo,
	CategorySettings,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Entries here appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between sidebar and main pane",
		Category:    CategoryNavigation,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:             "/",
		Description:     "Search sessions",
		Category:        CategoryNavigation,
		RequiresSidebar: true,
		Handler:         shortcutSearch,
		Condition:       func(m *Model) bool { return !m.sidebar.IsSearchMode() },
	},

	// Sessions
	{
		Key:             "r",
		Description:     "Resume selected session",
		Category:        CategorySessions,
		RequiresSidebar: true,
		RequiresSession: true,
		Handler:         shortcutResumeSession,
	},
	{
		Key:             "d",
		Description:     "Delete selected session",
		Category:        CategorySessions,
		RequiresSidebar: true,
		RequiresSession: true,
		Handler:         shortcutDeleteSession,
	},
	{
		Key:             "R",
		Description:     "Reload sessions",
		Category:        CategorySessions,
		RequiresSidebar: true,
		Handler:         shortcutReloadSessions,
		Condition:       func(m *Model) bool { return m.session.SignedIn() },
	},
	{
		Key:         keys.CtrlN,
		DisplayKey:  "ctrl-n",
		Description: "Start a new session",
		Category:    CategorySessions,
		Handler:     shortcutNewConversation,
	},

	// Video
	{
		Key:         keys.CtrlZ,
		DisplayKey:  "ctrl-z",
		Description: "Undo to the previous video",
		Category:    CategoryVideo,
		Handler:     shortcutUndo,
	},
	{
		Key:         keys.CtrlY,
		DisplayKey:  "ctrl-y",
		Description: "Redo to the next video",
		Category:    CategoryVideo,
		Handler:     shortcutRedo,
	},
	{
		Key:         keys.CtrlO,
		DisplayKey:  "ctrl-o",
		Description: "Copy video URL",
		Category:    CategoryVideo,
		Handler:     shortcutCopyURL,
	},
	{
		Key:             "y",
		Description:     "Copy video URL",
		Category:        CategoryVideo,
		RequiresSidebar: true,
		Handler:         shortcutCopyURL,
	},

	// Settings
	{
		Key:         keys.CtrlP,
		DisplayKey:  "ctrl-p",
		Description: "Video settings",
		Category:    CategorySettings,
		Handler:     shortcutParams,
	},
	{
		Key:             "p",
		Description:     "Video settings",
		Category:        CategorySettings,
		RequiresSidebar: true,
		Handler:         shortcutParams,
	},
	{
		Key:             ",",
		Description:     "Theme and notifications",
		Category:        CategorySettings,
		RequiresSidebar: true,
		Handler:         shortcutSettings,
	},

	// General
	// "?" is handled in ExecuteShortcut to avoid an init cycle
	{
		Key:             "w",
		Description:     "What's new (changelog)",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutWhatsNew,
	},
	{
		Key:             "S",
		Description:     "Sign out",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutSignOut,
		Condition:       func(m *Model) bool { return m.session.SignedIn() },
	},
	{
		Key:             "q",
		Description:     "Quit application",
		Category:        CategoryGeneral,
		RequiresSidebar: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresSidebar: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Navigate session list", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Preview session / Generate video", Category: CategoryNavigation},
	{DisplayKey: "Esc", Description: "Close preview / Clear search", Category: CategoryNavigation},
	{DisplayKey: "shift-enter", Description: "New line in prompt", Category: CategoryVideo},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll video panel", Category: CategoryVideo},
	{DisplayKey: "Mouse drag", Description: "Select text (auto-copies)", Category: CategoryVideo},
}

// isShortcutApplicable reports whether s's guards pass in the current state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresSidebar && m.focus != FocusSidebar {
		return false
	}
	if s.RequiresSession && m.sidebar.SelectedSession() == nil {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Keys go to the search input while it is open
	if m.sidebar.IsSearchMode() {
		return m, nil, false
	}

	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus)
			continue
		}
		m.log.Debug("running shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help sections from the shortcuts whose
// guards pass right now.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	seen := make(map[string]bool)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		id := s.Category + "\x00" + displayKey
		if seen[id] {
			return
		}
		seen[id] = true
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	return m, m.toggleFocus()
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	return m, m.sidebar.EnterSearchMode()
}

func shortcutResumeSession(m *Model) (tea.Model, tea.Cmd) {
	return m.resumeSession(*m.sidebar.SelectedSession())
}

func shortcutDeleteSession(m *Model) (tea.Model, tea.Cmd) {
	sess := m.sidebar.SelectedSession()
	m.modal.Show(modals.NewConfirmDeleteState(sess.ID, sess.Title()))
	return m, nil
}

func shortcutReloadSessions(m *Model) (tea.Model, tea.Cmd) {
	return m, m.reloadSessions()
}

func shortcutNewConversation(m *Model) (tea.Model, tea.Cmd) {
	return m.newConversation()
}

func shortcutUndo(m *Model) (tea.Model, tea.Cmd) {
	return m.undo()
}

func shortcutRedo(m *Model) (tea.Model, tea.Cmd) {
	return m.redo()
}

func shortcutCopyURL(m *Model) (tea.Model, tea.Cmd) {
	return m.copyVideoURL()
}

func shortcutParams(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewParamsState(m.prompt.Params()))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewSettingsState(ui.ThemeOptions(), string(ui.CurrentThemeName()), m.config.GetNotificationsEnabled()))
	return m, nil
}

func shortcutWhatsNew(m *Model) (tea.Model, tea.Cmd) {
	m.showChangelog("")
	return m, nil
}

func shortcutSignOut(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewConfirmSignOutState(m.session.DisplayName()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.quit()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	allShortcuts := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}
