package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// HelpState - keyboard shortcut reference backed by a bubbles list
// =============================================================================

const helpKeyColumn = 14

type helpShortcutItem struct {
	shortcut HelpShortcut
}

func (i helpShortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// helpSectionItem is a non-selectable section header.
type helpSectionItem struct {
	title string
}

func (i helpSectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (d helpDelegate) Height() int                             { return 1 }
func (d helpDelegate) Spacing() int                            { return 0 }
func (d helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case helpSectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(look.Secondary).Render(i.title))

	case helpShortcutItem:
		keyStyle := lipgloss.NewStyle().Foreground(look.Primary).Bold(true).Width(helpKeyColumn)
		descStyle := lipgloss.NewStyle().Foreground(look.Text)
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(look.Inverse).Background(look.Primary)
			descStyle = descStyle.Foreground(look.Inverse).Background(look.Primary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

// HelpState wraps a bubbles list.Model for the help modal.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: trigger  Esc: close"
}

func (s *HelpState) Render() string {
	title := look.Title.Render(s.Title())
	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.list.View(), help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	s.skipSectionHeader(msg)
	return s, cmd
}

// skipSectionHeader moves the cursor off a header after up/down navigation.
func (s *HelpState) skipSectionHeader(msg tea.Msg) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return
	}
	if _, header := s.list.SelectedItem().(helpSectionItem); !header {
		return
	}
	switch key.String() {
	case "up", "k":
		if s.list.Index() == 0 {
			s.list.CursorDown()
		} else {
			s.list.CursorUp()
		}
	default:
		s.list.CursorDown()
	}
}

// SetSize implements ModalWithSize.
func (s *HelpState) SetSize(width, height int) {
	// title and help text each take a line plus a margin
	const overhead = 4
	s.list.SetSize(width, max(1, min(height-overhead, HelpVisible)))
}

// GetSelectedShortcut returns the currently selected shortcut, or nil when a
// section header is selected or the list is empty.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(helpShortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering returns whether the user is currently typing in the filter.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections creates a HelpState from the shortcut registry.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpSectionItem{title: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpShortcutItem{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{}, Width, HelpVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(helpShortcutItem); ok {
			l.Select(i)
			break
		}
	}

	return &HelpState{list: l}
}
