package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/logger"
)

// sidebarSpinnerFrames is a shimmering spinner shown while sessions load.
var sidebarSpinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// sidebarSpinnerHoldTimes defines how long each frame should be held (in ticks).
// First and last frames hold longer for a "breathing" effect.
var sidebarSpinnerHoldTimes = []int{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3}

// Sidebar status lines
const (
	SidebarEmptyText    = "No sessions found."
	SidebarSignedOut    = "Sign in to see sessions"
	SidebarLoadFailed   = "Failed to load chat sessions"
	SidebarNoMatchText  = "No matching sessions"
	sidebarLoadingText  = "Loading sessions..."
	sidebarTitleMinimum = 6
)

// SidebarTickMsg is sent to advance the spinner animation
type SidebarTickMsg time.Time

// SidebarTick returns a command that sends a tick message after a delay
func SidebarTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return SidebarTickMsg(t)
	})
}

// Sidebar represents the left panel with the list of prior chat sessions
type Sidebar struct {
	sessions     []backend.ChatSession
	filtered     []backend.ChatSession // nil unless a search query is applied
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int

	loading  bool
	signedIn bool
	loadErr  string

	userName  string
	userEmail string

	spinnerFrame int
	spinnerTick  int

	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = SidebarSearchCharLimit

	return &Sidebar{searchInput: ti}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetSignedIn records whether a token is available to fetch sessions.
func (s *Sidebar) SetSignedIn(signedIn bool) {
	s.signedIn = signedIn
}

// SetUser sets the identity shown at the bottom of the panel.
func (s *Sidebar) SetUser(name, email string) {
	s.userName = name
	s.userEmail = email
}

// SetLoading toggles the loading spinner. Starting returns the first tick.
func (s *Sidebar) SetLoading(loading bool) tea.Cmd {
	was := s.loading
	s.loading = loading
	if loading {
		s.loadErr = ""
		if !was {
			s.spinnerFrame, s.spinnerTick = 0, 0
			return SidebarTick()
		}
	}
	return nil
}

// IsLoading returns whether sessions are being fetched
func (s *Sidebar) IsLoading() bool {
	return s.loading
}

// SetError stops loading and shows msg instead of the list.
func (s *Sidebar) SetError(msg string) {
	s.loading = false
	s.loadErr = msg
}

// SetSessions replaces the list, keeping the selection on the same session
// when it is still present.
func (s *Sidebar) SetSessions(sessions []backend.ChatSession) {
	var keepID string
	if sel := s.SelectedSession(); sel != nil {
		keepID = sel.ID
	}

	s.loading = false
	s.loadErr = ""
	s.sessions = sessions
	s.selectedIdx = 0
	s.scrollOffset = 0
	if s.searchMode || s.filtered != nil {
		s.applyFilter(s.searchInput.Value())
	}
	if keepID != "" {
		s.SelectSession(keepID)
	}

	logger.WithComponent("sidebar").Debug("sessions set", "count", len(sessions))
}

// Sessions returns every session, ignoring the filter.
func (s *Sidebar) Sessions() []backend.ChatSession {
	return s.sessions
}

// RemoveSession drops a session from the displayed list. It reports whether
// the id was present.
func (s *Sidebar) RemoveSession(id string) bool {
	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.sessions = append(s.sessions[:idx:idx], s.sessions[idx+1:]...)
	if s.filtered != nil {
		s.applyFilter(s.searchInput.Value())
	}
	s.clampSelection()
	return true
}

// SelectedSession returns the highlighted session, or nil when the list is empty.
func (s *Sidebar) SelectedSession() *backend.ChatSession {
	display := s.displaySessions()
	if s.selectedIdx < 0 || s.selectedIdx >= len(display) {
		return nil
	}
	return &display[s.selectedIdx]
}

// SelectSession selects a session by ID
func (s *Sidebar) SelectSession(id string) {
	for i, sess := range s.displaySessions() {
		if sess.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// EnterSearchMode activates search mode
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.applyFilter("")
	return s.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.filtered = nil
	s.clampSelection()
}

// IsSearchMode returns whether search mode is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// GetSearchQuery returns the current search query
func (s *Sidebar) GetSearchQuery() string {
	return s.searchInput.Value()
}

// applyFilter filters sessions by title, case-insensitively.
func (s *Sidebar) applyFilter(query string) {
	if query == "" {
		s.filtered = nil
		s.clampSelection()
		return
	}

	query = strings.ToLower(query)
	s.filtered = []backend.ChatSession{}
	for _, sess := range s.sessions {
		if strings.Contains(strings.ToLower(sess.Title()), query) {
			s.filtered = append(s.filtered, sess)
		}
	}
	s.clampSelection()
	s.scrollOffset = 0
}

// displaySessions returns the sessions to display (filtered or all)
func (s *Sidebar) displaySessions() []backend.ChatSession {
	if s.filtered != nil {
		return s.filtered
	}
	return s.sessions
}

func (s *Sidebar) clampSelection() {
	n := len(s.displaySessions())
	if s.selectedIdx >= n {
		s.selectedIdx = n - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// Update handles spinner ticks and navigation keys while focused.
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case SidebarTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinnerTick++
		holdTime := sidebarSpinnerHoldTimes[s.spinnerFrame%len(sidebarSpinnerHoldTimes)]
		if s.spinnerTick >= holdTime {
			s.spinnerTick = 0
			s.spinnerFrame = (s.spinnerFrame + 1) % len(sidebarSpinnerFrames)
		}
		return s, SidebarTick()

	case tea.KeyPressMsg:
		if !s.focused {
			return s, nil
		}

		if s.searchMode {
			switch msg.String() {
			case keys.Escape:
				s.ExitSearchMode()
				return s, nil
			case keys.Enter:
				// Keep the filter applied; leave the input
				s.searchMode = false
				s.searchInput.Blur()
				return s, nil
			case keys.Up, keys.CtrlP:
				s.move(-1)
				return s, nil
			case keys.Down, keys.CtrlN:
				s.move(1)
				return s, nil
			default:
				var cmd tea.Cmd
				s.searchInput, cmd = s.searchInput.Update(msg)
				s.applyFilter(s.searchInput.Value())
				return s, cmd
			}
		}

		switch msg.String() {
		case keys.Up, "k":
			s.move(-1)
		case keys.Down, "j":
			s.move(1)
		case keys.Home, "g":
			s.selectedIdx = 0
		case keys.End, "G":
			s.selectedIdx = max(len(s.displaySessions())-1, 0)
		case keys.Escape:
			if s.filtered != nil {
				s.ExitSearchMode()
			}
		}
	}

	return s, nil
}

func (s *Sidebar) move(delta int) {
	s.selectedIdx += delta
	s.clampSelection()
}

// statusLine returns the text shown instead of the list, if any.
func (s *Sidebar) statusLine() string {
	switch {
	case s.loading:
		frame := sidebarSpinnerFrames[s.spinnerFrame%len(sidebarSpinnerFrames)]
		return StatusLoadingStyle.Render(frame + " " + sidebarLoadingText)
	case !s.signedIn:
		return StatusMutedStyle.Render(SidebarSignedOut)
	case s.loadErr != "":
		return StatusErrorStyle.Render(s.loadErr)
	case len(s.sessions) == 0:
		return StatusMutedStyle.Render(SidebarEmptyText)
	case s.filtered != nil && len(s.filtered) == 0:
		return StatusMutedStyle.Render(SidebarNoMatchText)
	}
	return ""
}

// userLines renders the signed-in user's name and email, or nothing when
// signed out.
func (s *Sidebar) userLines(width int) []string {
	if !s.signedIn || s.userName == "" {
		return nil
	}
	fit := func(text string) string {
		return runewidth.Truncate(text, max(width-2, 1), "…")
	}
	out := []string{SidebarItemStyle.Render(fit(s.userName))}
	if s.userEmail != "" {
		out = append(out, SidebarItemStyle.Render(StatusMutedStyle.Render(fit(s.userEmail))))
	}
	return out
}

// renderRow renders one session as "title  date" fitted to width.
func renderRow(sess backend.ChatSession, width int, selected bool) string {
	date := sess.LocalDate()
	titleWidth := width - 2 - 1 - runewidth.StringWidth(date) // padding, gap
	if titleWidth < sidebarTitleMinimum {
		date = ""
		titleWidth = width - 2
	}
	title := strings.ReplaceAll(sess.Title(), "\n", " ")
	title = runewidth.Truncate(title, max(titleWidth, 1), "…")
	title = runewidth.FillRight(title, max(titleWidth, 0))

	if selected {
		row := title
		if date != "" {
			row += " " + date
		}
		return SidebarSelectedStyle.Width(width).Render(row)
	}
	row := title
	if date != "" {
		row += " " + SidebarDateStyle.Render(date)
	}
	return SidebarItemStyle.Width(width).Render(row)
}

// View renders the sidebar
func (s *Sidebar) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)

	var header []string
	header = append(header, PanelTitleStyle.Render("Sessions"))
	if s.searchMode || s.filtered != nil {
		searchStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
		s.searchInput.SetWidth(max(innerWidth-3, 1)) // room for "/ "
		header = append(header, searchStyle.Render("/")+" "+s.searchInput.View())
	}
	footer := s.userLines(innerWidth)
	visibleHeight := max(innerHeight-len(header)-len(footer), 0)

	var lines []string
	if status := s.statusLine(); status != "" {
		lines = append(lines, lipgloss.NewStyle().Width(innerWidth).Render(status))
	} else {
		display := s.displaySessions()

		if s.selectedIdx < s.scrollOffset {
			s.scrollOffset = s.selectedIdx
		} else if s.selectedIdx >= s.scrollOffset+visibleHeight {
			s.scrollOffset = s.selectedIdx - visibleHeight + 1
		}
		s.scrollOffset = max(min(s.scrollOffset, len(display)-visibleHeight), 0)

		end := min(s.scrollOffset+visibleHeight, len(display))
		for i := s.scrollOffset; i < end; i++ {
			lines = append(lines, renderRow(display[i], innerWidth, i == s.selectedIdx))
		}
	}

	rows := strings.Split(strings.Join(append(header, lines...), "\n"), "\n")
	if len(footer) > 0 {
		// Pin the user lines to the bottom
		bodyHeight := max(innerHeight-len(footer), 0)
		if len(rows) > bodyHeight {
			rows = rows[:bodyHeight]
		}
		for len(rows) < bodyHeight {
			rows = append(rows, "")
		}
		rows = append(rows, footer...)
	}
	if innerHeight > 0 && len(rows) > innerHeight {
		rows = rows[:innerHeight]
	}
	content := strings.Join(rows, "\n")

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(content)
}
