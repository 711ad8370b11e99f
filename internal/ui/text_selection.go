package ui

// Text selection coordinates are relative to the video panel's viewport:
//
//	┌──────────────────────────────┐
//	│ (border)                     │
//	│  (0,0) viewport content      │
//	│                              │
//	└──────────────────────────────┘
//
// The app shifts mouse events into panel coordinates; VideoPanel.Update
// subtracts one more on each axis for the border. ANSI codes are stripped
// before extracting text so columns match visible cells.

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/dryink/dryink/internal/clipboard"
	"github.com/dryink/dryink/internal/logger"
)

// ClipboardErrorMsg is sent when the native clipboard write fails
type ClipboardErrorMsg struct {
	Error error
}

const (
	doubleClickThreshold = 500 * time.Millisecond
	clickTolerance       = 2 // cells
)

// StartSelection begins a text selection at the given coordinates
func (v *VideoPanel) StartSelection(col, line int) {
	v.selectionStartCol = col
	v.selectionStartLine = line
	v.selectionEndCol = col
	v.selectionEndLine = line
	v.selectionActive = true
}

// EndSelection updates the end position of the selection during drag
func (v *VideoPanel) EndSelection(col, line int) {
	if !v.selectionActive {
		return
	}
	v.selectionEndCol = col
	v.selectionEndLine = line
}

// SelectionStop ends the drag but keeps the selection visible
func (v *VideoPanel) SelectionStop() {
	v.selectionActive = false
}

// SelectionClear clears the selection entirely
func (v *VideoPanel) SelectionClear() {
	v.selectionStartCol = -1
	v.selectionStartLine = -1
	v.selectionEndCol = -1
	v.selectionEndLine = -1
	v.selectionActive = false
}

// HasTextSelection returns true if there is an active or completed selection
func (v *VideoPanel) HasTextSelection() bool {
	return v.selectionStartCol >= 0 && v.selectionStartLine >= 0 &&
		(v.selectionEndCol != v.selectionStartCol || v.selectionEndLine != v.selectionStartLine)
}

// IsSelectionFlashing reports whether the copy flash is showing.
func (v *VideoPanel) IsSelectionFlashing() bool {
	return v.selectionFlashFrame >= 0
}

// handleMouseClick starts a selection, or selects a word (double click) or
// paragraph (triple click) and copies it.
func (v *VideoPanel) handleMouseClick(x, y int) tea.Cmd {
	now := time.Now()

	if now.Sub(v.lastClickTime) <= doubleClickThreshold &&
		abs(x-v.lastClickX) <= clickTolerance &&
		abs(y-v.lastClickY) <= clickTolerance {
		v.clickCount++
	} else {
		v.clickCount = 1
	}

	v.lastClickTime = now
	v.lastClickX = x
	v.lastClickY = y

	switch v.clickCount {
	case 1:
		v.StartSelection(x, y)
	case 2:
		v.SelectWord(x, y)
		return v.CopySelectedText()
	case 3:
		v.SelectParagraph(x, y)
		v.clickCount = 0
		return v.CopySelectedText()
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// viewLines returns the visible viewport lines with ANSI codes removed.
func (v *VideoPanel) viewLines() []string {
	lines := strings.Split(v.viewport.View(), "\n")
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return lines
}

// SelectWord selects the word at the given position
func (v *VideoPanel) SelectWord(col, line int) {
	lines := v.viewLines()
	if line < 0 || line >= len(lines) {
		return
	}

	currentLine := lines[line]
	if col < 0 || col >= len(currentLine) {
		return
	}

	// Walk UAX #29 word segments to the one containing col
	startCol, endCol := col, col
	rest, state, pos := currentLine, -1, 0
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if col < pos+len(word) {
			startCol, endCol = pos, pos+len(word)
			break
		}
		pos += len(word)
	}

	v.selectionStartCol = startCol
	v.selectionStartLine = line
	v.selectionEndCol = endCol
	v.selectionEndLine = line
	v.selectionActive = false
}

// SelectParagraph selects the block of non-blank lines around line.
func (v *VideoPanel) SelectParagraph(col, line int) {
	lines := v.viewLines()
	if line < 0 || line >= len(lines) {
		return
	}

	startLine := line
	endLine := line
	for startLine > 0 && strings.TrimSpace(lines[startLine-1]) != "" {
		startLine--
	}
	for endLine < len(lines)-1 && strings.TrimSpace(lines[endLine+1]) != "" {
		endLine++
	}

	v.selectionStartCol = 0
	v.selectionStartLine = startLine
	v.selectionEndCol = len(lines[endLine])
	v.selectionEndLine = endLine
	v.selectionActive = false
}

// selectionArea returns the selection normalized to reading order.
func (v *VideoPanel) selectionArea() (startCol, startLine, endCol, endLine int) {
	startCol = v.selectionStartCol
	startLine = v.selectionStartLine
	endCol = v.selectionEndCol
	endLine = v.selectionEndLine

	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}

	return
}

// GetSelectedText returns the currently selected text.
func (v *VideoPanel) GetSelectedText() string {
	if !v.HasTextSelection() {
		return ""
	}

	lines := v.viewLines()
	startCol, startLine, endCol, endLine := v.selectionArea()

	var result strings.Builder
	for y := max(startLine, 0); y <= endLine && y < len(lines); y++ {
		line := lines[y]

		lineStart, lineEnd := 0, len(line)
		if y == startLine {
			lineStart = startCol
		}
		if y == endLine {
			lineEnd = endCol
		}
		lineEnd = min(lineEnd, len(line))
		lineStart = min(max(lineStart, 0), lineEnd)

		result.WriteString(line[lineStart:lineEnd])
		if y < endLine {
			result.WriteString("\n")
		}
	}

	return strings.TrimSpace(result.String())
}

// CopySelectedText copies the selection via OSC 52 and the native
// clipboard, and starts the copy flash.
func (v *VideoPanel) CopySelectedText() tea.Cmd {
	selectedText := v.GetSelectedText()
	if selectedText == "" {
		return nil
	}

	v.selectionFlashFrame = 0

	return tea.Batch(
		tea.SetClipboard(selectedText),
		func() tea.Msg {
			if err := clipboard.WriteText(selectedText); err != nil {
				logger.WithComponent("ui").Warn("failed to write to clipboard", "error", err)
				return ClipboardErrorMsg{Error: err}
			}
			return nil
		},
		SelectionFlashTick(),
	)
}

// selectionView paints the selection over the rendered viewport using an
// ultraviolet screen buffer.
func (v *VideoPanel) selectionView(view string) string {
	if !v.HasTextSelection() {
		return view
	}

	width := v.viewport.Width()
	height := v.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	startCol, startLine, endCol, endLine := v.selectionArea()

	var selBg, selFg color.Color
	if v.selectionFlashFrame == 0 {
		selBg = TextSelectionFlashStyle.GetBackground()
		selFg = TextSelectionFlashStyle.GetForeground()
	} else {
		selBg = TextSelectionStyle.GetBackground()
		selFg = TextSelectionStyle.GetForeground()
	}

	for y := max(startLine, 0); y <= endLine && y < height; y++ {
		xStart, xEnd := 0, width
		if y == startLine {
			xStart = startCol
		}
		if y == endLine {
			xEnd = endCol
		}

		for x := max(xStart, 0); x < xEnd && x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = selBg
				cell.Style.Fg = selFg
				scr.SetCell(x, y, cell)
			}
		}
	}

	return scr.Render()
}
