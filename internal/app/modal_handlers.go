package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/auth"
	"github.com/dryink/dryink/internal/changelog"
	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/ui"
	"github.com/dryink/dryink/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the modal shown.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.ParamsState:
		return m.handleParamsModal(key, msg, s)
	case *modals.ConfirmDeleteState:
		return m.handleConfirmDeleteModal(key, msg, s)
	case *modals.ConfirmSignOutState:
		return m.handleConfirmSignOutModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.WelcomeState:
		return m.handleWelcomeModal(key, msg)
	case *modals.ChangelogState:
		return m.handleChangelogModal(key, msg)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	return m.forwardToModal(msg)
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleParamsModal applies the generation settings to the prompt, and
// saves them as defaults when asked.
func (m *Model) handleParamsModal(key string, msg tea.KeyPressMsg, state *modals.ParamsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		params, err := state.Params()
		if err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.prompt.SetParams(params)
		if state.SaveAsDefault() {
			if err := m.config.SetDefaultParams(params); err != nil {
				m.modal.SetError(err.Error())
				return m, nil
			}
			if err := m.config.Save(); err != nil {
				m.log.Error("failed to save default params", "error", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return m, nil
			}
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Video settings: " + params.String())
	}
	return m.forwardToModal(msg)
}

// handleConfirmDeleteModal removes the session from the list. The backend
// copy is left alone.
func (m *Model) handleConfirmDeleteModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmDeleteState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Confirmed() {
			return m, nil
		}
		if !m.sidebar.RemoveSession(state.SessionID) {
			return m, m.ShowFlashWarning("Session not found")
		}
		m.log.Info("session removed from list", "sessionID", state.SessionID)
		m.video.ClosePreview()
		return m, m.ShowFlashSuccess("Session deleted successfully")
	}
	return m.forwardToModal(msg)
}

// handleConfirmSignOutModal removes the local session file and exits.
func (m *Model) handleConfirmSignOutModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmSignOutState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if !state.Confirmed() {
			m.modal.Hide()
			return m, nil
		}
		if err := auth.SignOut(m.sessionFile); err != nil {
			m.log.Error("sign out failed", "error", err)
			m.modal.SetError("Failed to sign out: " + err.Error())
			return m, nil
		}
		m.log.Info("signed out")
		m.modal.Hide()
		return m.quit()
	}
	return m.forwardToModal(msg)
}

// handleSettingsModal handles key events for the global Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.config.SetNotificationsEnabled(state.NotificationsEnabled)
		if state.ThemeChanged() {
			selected := state.GetSelectedTheme()
			ui.SetTheme(ui.ThemeName(selected))
			m.config.SetTheme(selected)
			m.prompt.RefreshStyles()
		}
		if err := m.config.Save(); err != nil {
			m.log.Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleWelcomeModal(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		m.config.MarkWelcomeShown()
		if err := m.config.Save(); err != nil {
			m.log.Warn("failed to save welcome-shown flag", "error", err)
		}
		m.modal.Hide()
		return m.handleStartupModals()
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleChangelogModal(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		m.markVersionSeen()
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, the list owns every key
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if shortcut := state.GetSelectedShortcut(); shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleHelpShortcutTrigger runs a shortcut picked in the help modal. Help
// lists display keys, so they are mapped back to the registry key.
func (m *Model) handleHelpShortcutTrigger(displayKey string) (tea.Model, tea.Cmd) {
	key := ""
	for _, s := range append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut) {
		if s.Key == displayKey || (s.DisplayKey != "" && s.DisplayKey == displayKey) {
			key = s.Key
			break
		}
	}
	if key == "" {
		return m, nil
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// handleStartupModals shows the welcome tour on first run, then the
// changelog after an upgrade.
func (m *Model) handleStartupModals() (tea.Model, tea.Cmd) {
	if !m.config.HasSeenWelcome() {
		m.log.Info("showing welcome modal")
		m.modal.Show(modals.NewWelcomeState())
		return m, nil
	}

	if m.version == "" || m.version == "dev" {
		return m, nil
	}
	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen == m.version {
		return m, nil
	}
	if lastSeen == "" || !m.showChangelog(lastSeen) {
		m.markVersionSeen()
	}
	return m, nil
}

// showChangelog shows the entries newer than since, or every entry when
// since is empty. It reports whether anything was shown.
func (m *Model) showChangelog(since string) bool {
	entries := changelog.Parse(changelog.Content)
	if since != "" {
		entries = changelog.Since(since, entries)
	}
	if len(entries) == 0 {
		return false
	}

	uiEntries := make([]modals.ChangelogEntry, len(entries))
	for i, e := range entries {
		changes := make([]string, len(e.Changes))
		for j, c := range e.Changes {
			changes[j] = c.Text
			if c.Section != "" {
				changes[j] = c.Section + ": " + c.Text
			}
		}
		uiEntries[i] = modals.ChangelogEntry{Version: e.Version, Date: e.Date, Changes: changes}
	}
	m.log.Info("showing changelog", "since", since, "entries", len(uiEntries))
	m.modal.Show(modals.NewChangelogState(uiEntries))
	return true
}

func (m *Model) markVersionSeen() {
	if m.version == "" || m.version == "dev" {
		return
	}
	m.config.SetLastSeenVersion(m.version)
	if err := m.config.Save(); err != nil {
		m.log.Warn("failed to save last-seen version", "error", err)
	}
}
