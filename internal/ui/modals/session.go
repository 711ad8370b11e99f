package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/keys"
)

// =============================================================================
// ConfirmDeleteState - remove a chat session from the sidebar
// =============================================================================

type ConfirmDeleteState struct {
	SessionID     string
	SessionTitle  string
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Session?" }

func (s *ConfirmDeleteState) Help() string {
	return "up/down to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := look.Title.Render(s.Title())

	sessionLabel := lipgloss.NewStyle().
		Foreground(look.Secondary).
		Bold(true).
		MarginBottom(1).
		Render(fitWidth(s.SessionTitle, Width-8))

	message := lipgloss.NewStyle().
		Foreground(look.Text).
		Width(Width - 8).
		MarginBottom(1).
		Render("This removes the session from the list on this screen. The backend keeps its copy.")

	help := look.Help.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		sessionLabel,
		message,
		renderChoices(s.Options, s.SelectedIndex),
		help,
	)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed reports whether "Delete" is selected.
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.SelectedIndex == 1
}

// NewConfirmDeleteState creates a new ConfirmDeleteState with "Cancel" preselected.
func NewConfirmDeleteState(sessionID, title string) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		SessionID:    sessionID,
		SessionTitle: title,
		Options:      []string{"Cancel", "Delete"},
	}
}

// =============================================================================
// ConfirmSignOutState - sign out and quit
// =============================================================================

type ConfirmSignOutState struct {
	UserName string
	confirm  bool
	form     *huh.Form
}

func (*ConfirmSignOutState) modalState() {}

func (s *ConfirmSignOutState) Title() string { return "Sign Out" }

func (s *ConfirmSignOutState) Help() string {
	return "left/right: choose  Enter: confirm  Esc: cancel"
}

func (s *ConfirmSignOutState) Render() string {
	title := look.Title.Render(s.Title())
	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ConfirmSignOutState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Confirmed reports whether the user chose to sign out.
func (s *ConfirmSignOutState) Confirmed() bool {
	return s.confirm
}

// NewConfirmSignOutState creates the sign-out confirmation. The negative
// answer is preselected.
func NewConfirmSignOutState(userName string) *ConfirmSignOutState {
	s := &ConfirmSignOutState{UserName: userName}
	s.form = newForm(Width-8, nil,
		huh.NewConfirm().
			Title("Sign out "+userName+"?").
			Description("Dryink will close. Sign in again to see your sessions.").
			Affirmative("Sign out").
			Negative("Stay").
			Value(&s.confirm),
	)
	return s
}
