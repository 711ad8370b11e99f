package ui

import (
	"sync"

	"github.com/dryink/dryink/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	MainWidth     int
	VideoHeight   int
	PromptHeight  int

	mu sync.Mutex
}

var (
	ctx     *ViewContext
	ctxOnce sync.Once
)

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			PromptHeight: PromptTotalHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
	v.MainWidth = width - v.SidebarWidth

	v.PromptHeight = PromptTotalHeight
	v.VideoHeight = v.ContentHeight - v.PromptHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"mainWidth", v.MainWidth,
		"videoHeight", v.VideoHeight,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
