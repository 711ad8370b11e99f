package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/clipboard"
	"github.com/dryink/dryink/internal/notification"
	"github.com/dryink/dryink/internal/ui"
)

// submitPrompt starts a generation for the prompt in the input.
func (m *Model) submitPrompt() (tea.Model, tea.Cmd) {
	if m.isGenerating() || m.controller.Busy() {
		return m, m.ShowFlashWarning("Generation in progress")
	}
	prompt := m.prompt.Value()
	if prompt == "" {
		return m, m.ShowFlashWarning("Enter a prompt first")
	}
	if !m.session.SignedIn() {
		return m, m.ShowFlashError("Sign in to generate videos")
	}

	params := m.prompt.Params()
	m.generatingPrompt = prompt
	m.prompt.SetBusy(true)
	m.video.ClosePreview()
	m.log.Info("submitting generation", "params", params.String(), "followUp", m.controller.Conversation().FollowUp())

	ctx, ctrl := m.ctx, m.controller
	run := func() tea.Msg {
		entry, err := ctrl.Submit(ctx, prompt, params)
		return GenerationDoneMsg{Prompt: prompt, Entry: entry, Err: err}
	}
	return m, tea.Batch(m.video.StartGenerating(prompt), run)
}

// handleGenerationDone shows the new entry, or the failure notice.
func (m *Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	m.generatingPrompt = ""
	m.prompt.SetBusy(false)
	m.video.StopGenerating()

	if msg.Err != nil {
		m.log.Warn("generation failed", "error", msg.Err)
		return m, m.ShowNotice(msg.Err)
	}

	m.prompt.Reset()
	m.showCurrent()

	cmds := []tea.Cmd{m.ShowFlashSuccess("Video ready")}
	if m.config.GetNotificationsEnabled() {
		prompt := msg.Prompt
		cmds = append(cmds, func() tea.Msg {
			_ = notification.GenerationReady(prompt)
			return nil
		})
	}

	// A first generation creates a session the sidebar hasn't seen yet
	sessionID := m.controller.Conversation().SessionID()
	known := slices.ContainsFunc(m.sidebar.Sessions(), func(s backend.ChatSession) bool { return s.ID == sessionID })
	if sessionID != "" && !known {
		if cmd := m.reloadSessions(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// reloadSessions fetches the session list. It returns nil when signed out.
func (m *Model) reloadSessions() tea.Cmd {
	token, err := m.session.Token()
	if err != nil || m.backend == nil {
		m.sidebar.SetSignedIn(false)
		return nil
	}
	m.sidebar.SetSignedIn(true)

	ctx, gw := m.ctx, m.backend
	fetch := func() tea.Msg {
		sessions, err := gw.ListSessions(ctx, token)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
	return tea.Batch(m.sidebar.SetLoading(true), fetch)
}

func (m *Model) handleSessionsLoaded(msg SessionsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("failed to load sessions", "error", msg.Err)
		m.sidebar.SetError(ui.SidebarLoadFailed)
		return m, nil
	}
	m.log.Debug("sessions loaded", "count", len(msg.Sessions))
	m.sidebar.SetSessions(msg.Sessions)
	return m, nil
}

// undo steps back through the conversation history.
func (m *Model) undo() (tea.Model, tea.Cmd) {
	if _, err := m.controller.Undo(); err != nil {
		return m, m.ShowNotice(err)
	}
	m.video.ClosePreview()
	m.showCurrent()
	return m, nil
}

func (m *Model) redo() (tea.Model, tea.Cmd) {
	if _, err := m.controller.Redo(); err != nil {
		return m, m.ShowNotice(err)
	}
	m.video.ClosePreview()
	m.showCurrent()
	return m, nil
}

// copyVideoURL copies the signed URL of the displayed entry.
func (m *Model) copyVideoURL() (tea.Model, tea.Cmd) {
	entry, ok := m.controller.Current()
	if !ok || entry.VideoURL == "" {
		return m, m.ShowFlashInfo("No video to copy")
	}
	url := entry.VideoURL
	return m, tea.Batch(
		tea.SetClipboard(url),
		func() tea.Msg {
			if err := clipboard.WriteText(url); err != nil {
				m.log.Warn("failed to write to clipboard", "error", err)
				return ui.ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		m.ShowFlashSuccess("Copied video URL"),
	)
}

// resumeSession makes sess the conversation on screen. The next submission
// is a follow-up in that session.
func (m *Model) resumeSession(sess backend.ChatSession) (tea.Model, tea.Cmd) {
	if m.isGenerating() {
		return m, m.ShowFlashWarning("Generation in progress")
	}
	m.log.Info("resuming session", "sessionID", sess.ID, "chats", len(sess.Chats))
	if err := m.controller.Resume(sess.ID, sess.Entries()); err != nil {
		return m, m.ShowNotice(err)
	}
	m.video.ClosePreview()
	m.showCurrent()
	cmd := m.focusMain()
	return m, tea.Batch(cmd, m.ShowFlashInfo("Resumed "+sess.Title()))
}

// newConversation clears the screen for a fresh session.
func (m *Model) newConversation() (tea.Model, tea.Cmd) {
	if m.isGenerating() {
		return m, m.ShowFlashWarning("Generation in progress")
	}
	if err := m.controller.Reset(); err != nil {
		return m, m.ShowNotice(err)
	}
	m.video.ClosePreview()
	m.showCurrent()
	m.prompt.Reset()
	return m, m.focusMain()
}

// handleTickMessages forwards timer messages to the components that own them
func (m *Model) handleTickMessages(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case ui.SidebarTickMsg:
		_, cmd := m.sidebar.Update(msg)
		return cmd
	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return nil
		}
		if m.footer.HasFlash() {
			return ui.FlashTick()
		}
		return nil
	case ui.ClipboardErrorMsg:
		return m.ShowFlashError("Failed to copy to clipboard")
	}

	// Spinner, stopwatch, selection flash and cursor blink
	_, videoCmd := m.video.Update(msg)
	_, promptCmd := m.prompt.Update(msg)
	return tea.Batch(videoCmd, promptCmd)
}
