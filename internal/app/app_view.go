package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dryink/dryink/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current screen as a string.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterContext()

	mainPane := lipgloss.JoinVertical(
		lipgloss.Left,
		m.video.View(),
		m.prompt.View(),
	)

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		mainPane,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		panels,
		m.footer.View(),
	)
}

// updateFooterContext updates the footer with current context for conditional bindings
func (m *Model) updateFooterContext() {
	entry, hasEntry := m.controller.Current()
	m.footer.SetContext(ui.FooterContext{
		SidebarFocused: m.focus == FocusSidebar,
		HasSession:     m.sidebar.SelectedSession() != nil,
		SearchMode:     m.sidebar.IsSearchMode(),
		Generating:     m.isGenerating(),
		CanUndo:        m.controller.CanUndo(),
		CanRedo:        m.controller.CanRedo(),
		HasVideo:       hasEntry && entry.VideoURL != "",
		SignedIn:       m.session.SignedIn(),
	})
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.video.SetSize(ctx.MainWidth, ctx.VideoHeight)
	m.prompt.SetWidth(ctx.MainWidth)
}

// adjustMouseForVideo reports whether a mouse event lands on the video panel
// and returns it in panel coordinates.
func (m *Model) adjustMouseForVideo(msg tea.Msg) (tea.Msg, bool) {
	ctx := ui.GetViewContext()
	sidebarWidth := m.sidebar.Width()
	inPanel := func(x, y int) bool {
		return x > sidebarWidth && y >= ui.HeaderHeight && y < ui.HeaderHeight+ctx.VideoHeight
	}

	switch mouse := msg.(type) {
	case tea.MouseClickMsg:
		if inPanel(mouse.X, mouse.Y) {
			return tea.MouseClickMsg{X: mouse.X - sidebarWidth, Y: mouse.Y - ui.HeaderHeight, Button: mouse.Button, Mod: mouse.Mod}, true
		}
	case tea.MouseMotionMsg:
		// Drags may leave the panel; the selection clamps to it
		if mouse.X > sidebarWidth {
			return tea.MouseMotionMsg{X: mouse.X - sidebarWidth, Y: mouse.Y - ui.HeaderHeight, Button: mouse.Button, Mod: mouse.Mod}, true
		}
	case tea.MouseReleaseMsg:
		if mouse.X > sidebarWidth {
			return tea.MouseReleaseMsg{X: mouse.X - sidebarWidth, Y: mouse.Y - ui.HeaderHeight, Button: mouse.Button, Mod: mouse.Mod}, true
		}
	case tea.MouseWheelMsg:
		if inPanel(mouse.X, mouse.Y) {
			return mouse, true
		}
	}
	return nil, false
}

// routeMouseToVideo adjusts mouse coordinates and routes the event to the video panel.
func (m *Model) routeMouseToVideo(msg tea.Msg) (*Model, tea.Cmd, bool) {
	if adjusted, ok := m.adjustMouseForVideo(msg); ok {
		video, cmd := m.video.Update(adjusted)
		m.video = video
		return m, cmd, true
	}
	return m, nil, false
}
