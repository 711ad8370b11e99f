package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/ui/modals"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	Primary   string // focus, highlights, header gradient start
	Secondary string // key hints, section titles

	Bg         string
	BgSelected string // defaults to Primary if empty

	Text        string
	TextMuted   string
	TextInverse string // text on colored backgrounds

	Warning string
	Error   string
	Info    string
	Success string

	Border      string
	BorderFocus string // defaults to Primary if empty

	TextSelectionBg string
	TextSelectionFg string

	// CodeStyle is the chroma style used for JSON metadata in the video panel
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

const (
	ThemeDryink  ThemeName = "dryink"
	ThemeNord    ThemeName = "nord"
	ThemeDracula ThemeName = "dracula"
	ThemeGruvbox ThemeName = "gruvbox"
	ThemeLight   ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDryink

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDryink: {
		Name:            "Dryink",
		Primary:         "#4A3294",
		Secondary:       "#A78BFA",
		Bg:              "#16121F",
		BgSelected:      "#5B3FB5",
		Text:            "#F5F3FF",
		TextMuted:       "#A5A1B8",
		TextInverse:     "#16121F",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Info:            "#38BDF8",
		Success:         "#10B981",
		Border:          "#3B3452",
		BorderFocus:     "#7C5CE0",
		TextSelectionBg: "#7C5CE0",
		TextSelectionFg: "#FFFFFF",
		CodeStyle:       "monokai",
	},
	ThemeNord: {
		Name:            "Nord",
		Primary:         "#88C0D0",
		Secondary:       "#81A1C1",
		Bg:              "#2E3440",
		Text:            "#ECEFF4",
		TextMuted:       "#D8DEE9",
		TextInverse:     "#2E3440",
		Warning:         "#EBCB8B",
		Error:           "#BF616A",
		Info:            "#81A1C1",
		Success:         "#A3BE8C",
		Border:          "#4C566A",
		TextSelectionBg: "#5E81AC",
		TextSelectionFg: "#ECEFF4",
		CodeStyle:       "nord",
	},
	ThemeDracula: {
		Name:            "Dracula",
		Primary:         "#BD93F9",
		Secondary:       "#8BE9FD",
		Bg:              "#282A36",
		BgSelected:      "#44475A",
		Text:            "#F8F8F2",
		TextMuted:       "#B0B8D1",
		TextInverse:     "#282A36",
		Warning:         "#FFB86C",
		Error:           "#FF5555",
		Info:            "#8BE9FD",
		Success:         "#50FA7B",
		Border:          "#44475A",
		TextSelectionBg: "#6272A4",
		TextSelectionFg: "#F8F8F2",
		CodeStyle:       "dracula",
	},
	ThemeGruvbox: {
		Name:            "Gruvbox",
		Primary:         "#D79921",
		Secondary:       "#689D6A",
		Bg:              "#282828",
		BgSelected:      "#504945",
		Text:            "#EBDBB2",
		TextMuted:       "#BDAE93",
		TextInverse:     "#282828",
		Warning:         "#FE8019",
		Error:           "#FB4934",
		Info:            "#83A598",
		Success:         "#B8BB26",
		Border:          "#504945",
		TextSelectionBg: "#665C54",
		TextSelectionFg: "#FBF1C7",
		CodeStyle:       "gruvbox",
	},
	ThemeLight: {
		Name:            "Light",
		Primary:         "#4A3294",
		Secondary:       "#0891B2",
		Bg:              "#FFFFFF",
		BgSelected:      "#E0E7FF",
		Text:            "#1F2937",
		TextMuted:       "#6B7280",
		TextInverse:     "#FFFFFF",
		Warning:         "#D97706",
		Error:           "#DC2626",
		Info:            "#0891B2",
		Success:         "#059669",
		Border:          "#D1D5DB",
		TextSelectionBg: "#C7D2FE",
		TextSelectionFg: "#1F2937",
		CodeStyle:       "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDryink, ThemeNord, ThemeDracula, ThemeGruvbox, ThemeLight}
}

// ThemeOptions lists the themes for the settings modal.
func ThemeOptions() []modals.ThemeOption {
	names := ThemeNames()
	opts := make([]modals.ThemeOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, modals.ThemeOption{Key: string(n), Name: BuiltinThemes[n].Name})
	}
	return opts
}

// GetTheme returns a theme by name, defaulting to Dryink if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the key of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
	RefreshModalStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

func init() {
	regenerateStyles()
	RefreshModalStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarDateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	PromptInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PromptInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	VideoLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true)

	VideoPromptStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	VideoURLStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Underline(true)

	VideoTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.TextSelectionBg)).
		Foreground(lipgloss.Color(t.TextSelectionFg))

	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorTextInverse)
}
