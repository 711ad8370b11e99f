package modals

import (
	"image/color"

	"charm.land/bubbles/v2/textarea"
	"charm.land/lipgloss/v2"
)

// Layout limits. The ui package sizes the modal frame from the same values.
const (
	Width            = 60
	WideWidth        = 90
	ChangelogVisible = 16
	HelpVisible      = 18
)

// Palette holds the theme colors modals draw with.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Text      color.Color
	Muted     color.Color
	Inverse   color.Color
	Warning   color.Color
}

// Look is the slice of the active theme modals render with. The ui package
// hands a fresh one over through Apply whenever the theme changes.
type Look struct {
	Title    lipgloss.Style
	Help     lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Palette
}

var look Look

// Apply replaces the look used by every modal rendered afterwards.
func Apply(l Look) {
	look = l
}

// Current returns the look in use.
func Current() Look {
	return look
}

// ApplyTextareaStyles colors ta from the current look. Neither state gets a
// background, so the prompt sits on the terminal's own.
func ApplyTextareaStyles(ta *textarea.Model) {
	text := lipgloss.NewStyle().Foreground(look.Text)
	placeholder := lipgloss.NewStyle().Foreground(look.Muted)

	styles := ta.Styles()
	for _, st := range []*textarea.StyleState{&styles.Focused, &styles.Blurred} {
		st.Base = lipgloss.NewStyle()
		st.Text = text
		st.Placeholder = placeholder
		st.CursorLine = text
		st.Prompt = text
	}
	ta.SetStyles(styles)
}
