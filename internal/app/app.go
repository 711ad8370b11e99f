package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/auth"
	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/generation"
	"github.com/dryink/dryink/internal/history"
	"github.com/dryink/dryink/internal/logger"
	"github.com/dryink/dryink/internal/ui"
	"github.com/dryink/dryink/internal/ui/modals"
)

// Focus represents which panel has focus
type Focus int

const (
	FocusSidebar Focus = iota
	FocusMain
)

func (f Focus) String() string {
	if f == FocusSidebar {
		return "sidebar"
	}
	return "main"
}

// Backend is the part of the HTTP gateway the dashboard talks to.
type Backend interface {
	generation.Gateway
	ListSessions(ctx context.Context, token string) ([]backend.ChatSession, error)
}

// Deps are the collaborators the model is built from.
type Deps struct {
	Backend     Backend
	Session     *auth.Session
	SessionFile string // removed on sign-out
}

// Model is the main application model
type Model struct {
	config      *config.Config
	version     string
	session     *auth.Session
	sessionFile string
	backend     Backend
	controller  *generation.Controller

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	prompt  *ui.Prompt
	video   *ui.VideoPanel
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	// generatingPrompt is the prompt of the submission in flight, "" when idle.
	generatingPrompt string

	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger
}

// StartupModalMsg is sent on app start to trigger welcome/changelog modals
type StartupModalMsg struct{}

// GenerationDoneMsg carries the result of a submission.
type GenerationDoneMsg struct {
	Prompt string
	Entry  history.Entry
	Err    error
}

// SessionsLoadedMsg carries the result of a /sessions fetch.
type SessionsLoadedMsg struct {
	Sessions []backend.ChatSession
	Err      error
}

// New creates a new app model
func New(cfg *config.Config, deps Deps, version string) *Model {
	if themeName := cfg.GetTheme(); themeName != "" {
		ui.SetThemeByName(themeName)
	}

	sess := deps.Session
	if sess == nil {
		sess = &auth.Session{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		config:      cfg,
		version:     version,
		session:     sess,
		sessionFile: deps.SessionFile,
		backend:     deps.Backend,
		controller:  generation.NewController(deps.Backend, sess),
		header:      ui.NewHeader(),
		footer:      ui.NewFooter(),
		sidebar:     ui.NewSidebar(),
		prompt:      ui.NewPrompt(),
		video:       ui.NewVideoPanel(),
		modal:       ui.NewModal(),
		focus:       FocusMain,
		ctx:         ctx,
		cancel:      cancel,
		log:         logger.WithComponent("app"),
	}

	m.header.SetUserName(sess.DisplayName())
	m.header.SetSessionTitle(m.sessionTitle())
	m.sidebar.SetSignedIn(sess.SignedIn())
	m.sidebar.SetUser(sess.DisplayName(), sess.Email())
	m.prompt.SetParams(cfg.GetDefaultParams())
	m.prompt.SetFocused(true)
	m.video.SetFocused(true)

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		func() tea.Msg { return StartupModalMsg{} },
	}
	if cmd := m.reloadSessions(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		result, cmd := m.handleKeyPress(msg)
		if result != nil {
			return result, cmd
		}
		return m, m.routeKeyToFocused(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			modal, cmd := m.modal.Update(msg)
			m.modal = modal
			return m, cmd
		}
		_, cmd, _ := m.routeMouseToVideo(msg)
		return m, cmd

	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)

	case SessionsLoadedMsg:
		return m.handleSessionsLoaded(msg)

	case StartupModalMsg:
		return m.handleStartupModals()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	// Update modal
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	if cmd := m.handleTickMessages(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// quit cancels in-flight requests and exits the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.log.Info("quitting")
	m.cancel()
	return m, tea.Quit
}

// toggleFocus switches focus between sidebar and the main pane
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == FocusSidebar {
		return m.focusMain()
	}
	m.focusSidebar()
	return nil
}

func (m *Model) focusSidebar() {
	m.focus = FocusSidebar
	m.sidebar.SetFocused(true)
	m.prompt.SetFocused(false)
	m.video.SetFocused(false)
}

func (m *Model) focusMain() tea.Cmd {
	m.focus = FocusMain
	m.sidebar.SetFocused(false)
	m.video.SetFocused(true)
	return m.prompt.SetFocused(true)
}

// sessionTitle is the header title for the conversation on screen.
func (m *Model) sessionTitle() string {
	entries := m.controller.Conversation().History().Entries()
	if len(entries) == 0 || entries[0].Prompt == "" {
		return "New Session"
	}
	return entries[0].Prompt
}

// showCurrent puts the controller's current entry on the video panel.
func (m *Model) showCurrent() {
	h := m.controller.Conversation().History()
	if e, ok := h.Current(); ok {
		m.video.ShowEntry(e, h.Cursor()+1, h.Len(), h.CanUndo(), h.CanRedo())
	} else {
		m.video.ClearEntry()
	}
	m.header.SetSessionTitle(m.sessionTitle())
}

// isGenerating reports whether a submission is in flight.
func (m *Model) isGenerating() bool {
	return m.generatingPrompt != ""
}
