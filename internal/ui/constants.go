package ui

import (
	"time"

	"github.com/dryink/dryink/internal/ui/modals"
)

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// MinSidebarWidth keeps session titles readable on narrow terminals
	MinSidebarWidth = 24

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 60
	MinTerminalHeight = 16

	// PromptTextareaHeight is the number of lines for the prompt input
	PromptTextareaHeight = 3

	// PromptStatusHeight is the params/counter line under the prompt
	PromptStatusHeight = 1

	// PromptTotalHeight is the prompt panel including its border
	PromptTotalHeight = PromptTextareaHeight + PromptStatusHeight + BorderSize

	// InputPaddingWidth is the horizontal padding inside the prompt (Padding(0, 1))
	InputPaddingWidth = 2

	// DefaultWrapWidth is used before the first WindowSizeMsg arrives
	DefaultWrapWidth = 80
)

// Limits
const (
	// PromptCharLimit caps prompt length in graphemes
	PromptCharLimit = 2000

	// SidebarSearchCharLimit caps the sidebar filter query
	SidebarSearchCharLimit = 64
)

// Modal frame widths, shared with the modals package
const (
	ModalWidth     = modals.Width
	ModalWidthWide = modals.WideWidth
)

// Timing
const (
	// DefaultFlashDuration is how long a footer notice stays visible
	DefaultFlashDuration = 3 * time.Second

	flashTickInterval     = 500 * time.Millisecond
	stopwatchTickInterval = time.Second
	selectionFlashTick    = 150 * time.Millisecond
)
