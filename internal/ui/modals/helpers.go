package modals

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderChoices renders options one per line, marking the chosen one.
func renderChoices(options []string, chosen int) string {
	lines := make([]string, len(options))
	for i, opt := range options {
		if i == chosen {
			lines[i] = look.Selected.Render("> " + opt)
			continue
		}
		lines[i] = look.Item.Render("  " + opt)
	}
	return strings.Join(lines, "\n") + "\n"
}

// fitWidth shortens s to at most width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
