package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Populated from the active theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Sidebar styles
var (
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarDateStyle     lipgloss.Style
)

// Prompt and video panel styles
var (
	PromptInputStyle        lipgloss.Style
	PromptInputFocusedStyle lipgloss.Style

	VideoLabelStyle  lipgloss.Style
	VideoPromptStyle lipgloss.Style
	VideoURLStyle    lipgloss.Style
	VideoTextStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusMutedStyle   lipgloss.Style
)

// Text selection styles. The flash style shows briefly after a copy.
var (
	TextSelectionStyle      lipgloss.Style
	TextSelectionFlashStyle lipgloss.Style
)
