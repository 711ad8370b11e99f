package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/dryink/dryink/internal/keys"
)

// newForm builds a single-group form sized for a modal. A nil layout keeps
// huh's default. The form is initialized so the first render is complete.
func newForm(width int, layout huh.Layout, fields ...huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(formTheme()).
		WithShowHelp(false).
		WithWidth(width)
	if layout != nil {
		form = form.WithLayout(layout)
	}
	form.Init()
	return form
}

// updateForm forwards msg to form. Enter and Esc are left to the app, which
// decides whether the form is submitted or dismissed.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && (key.String() == keys.Enter || key.String() == keys.Escape) {
		return form, nil
	}
	next, cmd := form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// formTheme derives huh styles from the current look. It is rebuilt for each
// form so a theme switch shows up in the next dialog.
func formTheme() huh.Theme {
	p := look.Palette
	fg := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	marker := func(c color.Color, s string) lipgloss.Style { return fg(c).SetString(s) }
	button := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		f := &t.Focused

		f.Base = lipgloss.NewStyle().PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(p.Primary)
		f.Card = f.Base
		f.Title = fg(p.Text).Bold(true)
		f.Description = fg(p.Muted).Italic(true)
		f.ErrorIndicator = marker(p.Warning, " *")
		f.ErrorMessage = fg(p.Warning)

		// Selects and confirms
		f.SelectSelector = marker(p.Primary, "> ")
		f.MultiSelectSelector = marker(p.Primary, "> ")
		f.NextIndicator = marker(p.Primary, "→").MarginLeft(1)
		f.PrevIndicator = marker(p.Primary, "←").MarginRight(1)
		f.Option = fg(p.Text)
		f.SelectedOption = fg(p.Secondary)
		f.SelectedPrefix = marker(p.Secondary, "[x] ")
		f.UnselectedOption = fg(p.Text)
		f.UnselectedPrefix = marker(p.Muted, "[ ] ")
		f.FocusedButton = button.Foreground(p.Inverse).Background(p.Primary)
		f.BlurredButton = button.Foreground(p.Muted)

		// Number inputs in the video settings form
		f.TextInput.Cursor = fg(p.Primary)
		f.TextInput.Placeholder = fg(p.Muted)
		f.TextInput.Prompt = fg(p.Primary)
		f.TextInput.Text = fg(p.Text)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(p.Secondary).Bold(true)
		t.Group.Description = fg(p.Muted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
