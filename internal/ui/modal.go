package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/ui/modals"
)

// RefreshModalStyles pushes the current theme into the modals package.
func RefreshModalStyles() {
	modals.Apply(modals.Look{
		Title:    ModalTitleStyle,
		Help:     ModalHelpStyle,
		Item:     SidebarItemStyle,
		Selected: SidebarSelectedStyle,
		Error:    StatusErrorStyle,
		Palette: modals.Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Text:      ColorText,
			Muted:     ColorTextMuted,
			Inverse:   ColorTextInverse,
			Warning:   ColorWarning,
		},
	})
}

// Modal hosts one modal at a time. State is nil when nothing is shown.
type Modal struct {
	State modals.ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError shows err under the modal content until the next Show or Hide.
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// width returns the modal's preferred width clamped to the screen.
func (m *Modal) width(screenWidth int) int {
	w := ModalWidth
	if p, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		w = p.PreferredWidth()
	}
	if screenWidth > 0 && w > screenWidth-4 {
		w = max(screenWidth-4, 20)
	}
	return w
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	width := m.width(screenWidth)
	if s, ok := m.State.(modals.ModalWithSize); ok {
		// padding (2 each side) and border (1 each side)
		s.SetSize(width-6, max(screenHeight-6, 4))
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Width(width).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
