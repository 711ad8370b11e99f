package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/history"
	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/landing"
)

// StopwatchTickMsg refreshes the elapsed time while generating
type StopwatchTickMsg time.Time

// SelectionFlashTickMsg ends the copy flash on a text selection
type SelectionFlashTickMsg time.Time

// StopwatchTick returns a command that sends a tick message after a delay
func StopwatchTick() tea.Cmd {
	return tea.Tick(stopwatchTickInterval, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// SelectionFlashTick returns a command that sends a selection flash tick
func SelectionFlashTick() tea.Cmd {
	return tea.Tick(selectionFlashTick, func(t time.Time) tea.Msg {
		return SelectionFlashTickMsg(t)
	})
}

// VideoPanel shows the entry at the history cursor, a session preview, or
// the landing tour when there is nothing yet.
type VideoPanel struct {
	viewport viewport.Model
	width    int
	height   int
	focused  bool

	entry    *history.Entry
	position int // 1-based cursor position
	total    int
	canUndo  bool
	canRedo  bool

	preview *backend.ChatSession

	generating bool
	genStart   time.Time
	genPrompt  string
	spinner    spinner.Model

	// Selection is in viewport coordinates; -1 means unset.
	selectionStartCol   int
	selectionStartLine  int
	selectionEndCol     int
	selectionEndLine    int
	selectionActive     bool
	selectionFlashFrame int // 0 while the copy flash shows, -1 otherwise

	lastClickTime time.Time
	lastClickX    int
	lastClickY    int
	clickCount    int
}

// NewVideoPanel creates an empty video panel
func NewVideoPanel() *VideoPanel {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &VideoPanel{
		viewport:            vp,
		spinner:             spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		selectionFlashFrame: -1,
	}
	v.SelectionClear()
	v.updateContent()
	return v
}

// SetSize sets the panel's outer dimensions
func (v *VideoPanel) SetSize(width, height int) {
	v.width = width
	v.height = height

	ctx := GetViewContext()
	v.viewport.SetWidth(max(ctx.InnerWidth(width), 1))
	v.viewport.SetHeight(max(ctx.InnerHeight(height), 1))
	v.updateContent()
}

// SetFocused sets the focus state
func (v *VideoPanel) SetFocused(focused bool) {
	v.focused = focused
}

// ShowEntry displays e as the cursor entry of a history with total entries.
func (v *VideoPanel) ShowEntry(e history.Entry, position, total int, canUndo, canRedo bool) {
	v.entry = &e
	v.position = position
	v.total = total
	v.canUndo = canUndo
	v.canRedo = canRedo
	v.preview = nil
	v.SelectionClear()
	v.updateContent()
	v.viewport.GotoTop()
}

// ClearEntry returns the panel to the landing tour.
func (v *VideoPanel) ClearEntry() {
	v.entry = nil
	v.position, v.total = 0, 0
	v.canUndo, v.canRedo = false, false
	v.SelectionClear()
	v.updateContent()
}

// Entry returns the entry being shown, if any.
func (v *VideoPanel) Entry() (history.Entry, bool) {
	if v.entry == nil {
		return history.Entry{}, false
	}
	return *v.entry, true
}

// ShowPreview shows a read-only view of a prior session's chats.
func (v *VideoPanel) ShowPreview(sess backend.ChatSession) {
	v.preview = &sess
	v.SelectionClear()
	v.updateContent()
	v.viewport.GotoTop()
}

// ClosePreview goes back to the current entry.
func (v *VideoPanel) ClosePreview() {
	v.preview = nil
	v.SelectionClear()
	v.updateContent()
}

// IsPreviewing reports whether a session preview is showing.
func (v *VideoPanel) IsPreviewing() bool {
	return v.preview != nil
}

// StartGenerating shows the spinner and stopwatch for prompt.
func (v *VideoPanel) StartGenerating(prompt string) tea.Cmd {
	v.generating = true
	v.genStart = time.Now()
	v.genPrompt = prompt
	v.preview = nil
	v.SelectionClear()
	v.updateContent()
	return tea.Batch(v.spinner.Tick, StopwatchTick())
}

// StopGenerating hides the spinner.
func (v *VideoPanel) StopGenerating() {
	v.generating = false
	v.genPrompt = ""
	v.updateContent()
}

// IsGenerating reports whether a generation is in flight
func (v *VideoPanel) IsGenerating() bool {
	return v.generating
}

// Elapsed returns the time since generation started.
func (v *VideoPanel) Elapsed() time.Duration {
	if !v.generating {
		return 0
	}
	return time.Since(v.genStart)
}

// formatElapsed formats a duration as a stopwatch string (e.g., "12s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language, styleName string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return buf.String()
}

// renderResponse pretty-prints and highlights JSON responses; anything else
// is wrapped as plain text.
func renderResponse(resp string, width int) string {
	trimmed := strings.TrimSpace(resp)
	if trimmed == "" {
		return StatusMutedStyle.Render("(no response text)")
	}
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) && json.Valid([]byte(trimmed)) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(trimmed), "", "  "); err == nil {
			return strings.TrimRight(highlightCode(buf.String(), "json", CurrentTheme().CodeStyle), "\n")
		}
	}
	return VideoTextStyle.Width(width).Render(trimmed)
}

func (v *VideoPanel) wrapWidth() int {
	w := v.viewport.Width()
	if w <= 0 {
		w = DefaultWrapWidth
	}
	return w
}

// renderEntry renders one prompt/url/response block.
func renderEntry(e history.Entry, width int) string {
	var sb strings.Builder
	sb.WriteString(VideoLabelStyle.Render("Prompt"))
	sb.WriteString("\n")
	sb.WriteString(VideoPromptStyle.Width(width).Render(e.Prompt))
	sb.WriteString("\n\n")
	sb.WriteString(VideoLabelStyle.Render("Video"))
	sb.WriteString("\n")
	if e.VideoURL != "" {
		sb.WriteString(VideoURLStyle.Render(e.VideoURL))
	} else {
		sb.WriteString(StatusMutedStyle.Render("(no video url)"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(VideoLabelStyle.Render("Response"))
	sb.WriteString("\n")
	sb.WriteString(renderResponse(e.GeneratedResponse, width))
	return sb.String()
}

// navHint renders "n/m  ctrl+z undo  ctrl+y redo" with unavailable keys dimmed.
func (v *VideoPanel) navHint() string {
	on := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	off := lipgloss.NewStyle().Foreground(ColorBorder)

	undo, redo := off, off
	if v.canUndo {
		undo = on
	}
	if v.canRedo {
		redo = on
	}
	pos := StatusMutedStyle.Render(fmt.Sprintf("%d/%d", v.position, v.total))
	return pos + "  " + undo.Render("ctrl+z undo") + "  " + redo.Render("ctrl+y redo")
}

func (v *VideoPanel) renderGenerating() string {
	stopwatchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(ColorSecondary).Render(v.spinner.View()))
	sb.WriteString(" ")
	sb.WriteString(StatusLoadingStyle.Render("Generating video... "))
	sb.WriteString(stopwatchStyle.Render(formatElapsed(v.Elapsed())))
	if v.genPrompt != "" {
		sb.WriteString("\n\n")
		sb.WriteString(VideoPromptStyle.Width(v.wrapWidth()).Render(v.genPrompt))
	}
	return sb.String()
}

func (v *VideoPanel) renderPreview() string {
	width := v.wrapWidth()
	sess := v.preview

	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render(sess.Title()))
	sb.WriteString("  ")
	sb.WriteString(SidebarDateStyle.Render(sess.LocalDate()))
	sb.WriteString("\n")
	sb.WriteString(StatusMutedStyle.Render("r resume  esc close"))

	if len(sess.Chats) == 0 {
		sb.WriteString("\n\n")
		sb.WriteString(StatusMutedStyle.Render("This session has no chats."))
	}
	for i, e := range sess.Entries() {
		sb.WriteString("\n\n")
		sb.WriteString(VideoLabelStyle.Render(fmt.Sprintf("#%d", i+1)))
		sb.WriteString("\n")
		sb.WriteString(renderEntry(e, width))
	}
	return sb.String()
}

func (v *VideoPanel) updateContent() {
	var content string
	switch {
	case v.generating:
		content = v.renderGenerating()
	case v.preview != nil:
		content = v.renderPreview()
	case v.entry != nil:
		content = v.navHint() + "\n\n" + renderEntry(*v.entry, v.wrapWidth())
	default:
		content = landing.Render(v.wrapWidth())
	}
	v.viewport.SetContent(content)
}

// Update handles ticks, scrolling, and mouse selection. Mouse coordinates
// are relative to the panel's top-left corner, border included.
func (v *VideoPanel) Update(msg tea.Msg) (*VideoPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.generating {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.updateContent()
		return v, cmd

	case StopwatchTickMsg:
		if !v.generating {
			return v, nil
		}
		v.updateContent()
		return v, StopwatchTick()

	case SelectionFlashTickMsg:
		v.selectionFlashFrame = -1
		return v, nil

	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return v, nil
		}
		return v, v.handleMouseClick(msg.X-1, msg.Y-1)

	case tea.MouseMotionMsg:
		v.EndSelection(msg.X-1, msg.Y-1)
		return v, nil

	case tea.MouseReleaseMsg:
		if !v.selectionActive {
			return v, nil
		}
		v.EndSelection(msg.X-1, msg.Y-1)
		v.SelectionStop()
		return v, v.CopySelectedText()

	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.PgUp, keys.PgDown, "ctrl+u", "ctrl+d", keys.Home, keys.End:
		default:
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View renders the video panel
func (v *VideoPanel) View() string {
	style := PanelStyle
	if v.focused {
		style = PanelFocusedStyle
	}
	return style.Width(v.width).Height(v.height).Render(v.selectionView(v.viewport.View()))
}
