package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/keys"
)

// handleKeyPress handles global keys, modals and shortcuts.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should fall through
// to the focused panel for handling.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus, "modalVisible", m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if key == keys.CtrlC {
		return m.quit()
	}

	if key == keys.Escape {
		if result, cmd, handled := m.handleEscapeKey(); handled {
			return result, cmd
		}
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if key == keys.Enter {
		return m.handleEnterKey()
	}

	return nil, nil
}

// handleEscapeKey closes the preview or clears a text selection.
func (m *Model) handleEscapeKey() (tea.Model, tea.Cmd, bool) {
	if m.sidebar.IsSearchMode() {
		m.sidebar.ExitSearchMode()
		return m, nil, true
	}
	if m.video.IsPreviewing() {
		m.video.ClosePreview()
		return m, nil, true
	}
	if m.video.HasTextSelection() {
		m.video.SelectionClear()
		return m, nil, true
	}
	return m, nil, false
}

// handleEnterKey previews the selected session from the sidebar, or submits
// the prompt from the main pane.
func (m *Model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusSidebar:
		if m.sidebar.IsSearchMode() {
			return nil, nil
		}
		if sess := m.sidebar.SelectedSession(); sess != nil {
			m.log.Debug("previewing session", "sessionID", sess.ID)
			m.video.ShowPreview(*sess)
		}
		return m, nil
	case FocusMain:
		return m.submitPrompt()
	}
	return m, nil
}

// routeKeyToFocused sends a key nobody else claimed to the focused panel.
func (m *Model) routeKeyToFocused(msg tea.KeyPressMsg) tea.Cmd {
	if m.focus == FocusSidebar {
		_, cmd := m.sidebar.Update(msg)
		return cmd
	}

	switch msg.String() {
	case keys.PgUp, keys.PgDown, "ctrl+u", "ctrl+d":
		_, cmd := m.video.Update(msg)
		return cmd
	}

	if m.isGenerating() {
		if msg.Text != "" {
			return m.ShowFlashWarning("Generation in progress")
		}
		return nil
	}

	_, cmd := m.prompt.Update(msg)
	return cmd
}
