package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " dryink"

// Header represents the top header bar
type Header struct {
	width        int
	sessionTitle string
	userName     string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSessionTitle sets the title of the conversation being shown.
func (h *Header) SetSessionTitle(title string) {
	h.sessionTitle = title
}

// SetUserName sets the signed-in user's display name.
func (h *Header) SetUserName(name string) {
	h.userName = name
}

// View renders the header
func (h *Header) View() string {
	var right string
	if h.sessionTitle != "" {
		right = h.sessionTitle
	}
	if h.userName != "" {
		if right != "" {
			right += "  "
		}
		right += "[" + h.userName + "]"
	}
	if right != "" {
		right += " "
	}

	// Keep the title visible; shorten the session title first
	room := h.width - runewidth.StringWidth(headerTitle) - 2
	if runewidth.StringWidth(right) > room {
		right = runewidth.Truncate(right, max(room, 0), "… ")
	}

	padding := max(h.width-runewidth.StringWidth(headerTitle)-runewidth.StringWidth(right), 0)
	return h.renderGradient(headerTitle + strings.Repeat(" ", padding) + right)
}

// parseHexColor parses a hex color string (e.g., "#4A3294") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content on a background fading from the theme's
// primary color to its background color. The user name is muted.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	userStart := -1
	if h.userName != "" {
		if idx := strings.LastIndex(content, "["); idx >= 0 {
			userStart = len([]rune(content[:idx]))
		}
	}
	titleLen := len([]rune(headerTitle))

	var result strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(len(runes))
		bg := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X",
			int(float64(startR)*(1-t)+float64(endR)*t),
			int(float64(startG)*(1-t)+float64(endG)*t),
			int(float64(startB)*(1-t)+float64(endB)*t),
		))

		style := lipgloss.NewStyle().Background(bg).Bold(i < titleLen)
		if userStart >= 0 && i >= userStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
