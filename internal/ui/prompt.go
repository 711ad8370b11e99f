package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/dryink/dryink/internal/generation"
	"github.com/dryink/dryink/internal/keys"
	"github.com/dryink/dryink/internal/ui/modals"
)

// Prompt is the input box under the video panel. Enter is left to the app
// (submit); shift+enter inserts a newline.
type Prompt struct {
	input   textarea.Model
	width   int
	focused bool
	params  generation.Params
	busy    bool
}

// NewPrompt creates the prompt input with default params
func NewPrompt() *Prompt {
	ti := textarea.New()
	ti.Placeholder = "Describe the video you want..."
	ti.CharLimit = 0 // enforced in graphemes by Update
	ti.SetHeight(PromptTextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter)
	modals.ApplyTextareaStyles(&ti)

	return &Prompt{
		input:  ti,
		params: generation.DefaultParams(),
	}
}

// RefreshStyles re-applies theme colors after a theme change.
func (p *Prompt) RefreshStyles() {
	modals.ApplyTextareaStyles(&p.input)
}

// SetWidth sets the outer width of the prompt box
func (p *Prompt) SetWidth(width int) {
	p.width = width
	p.input.SetWidth(max(GetViewContext().InnerWidth(width)-InputPaddingWidth, 1))
}

// SetFocused focuses or blurs the textarea
func (p *Prompt) SetFocused(focused bool) tea.Cmd {
	p.focused = focused
	if focused {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (p *Prompt) IsFocused() bool {
	return p.focused
}

// Value returns the trimmed prompt text
func (p *Prompt) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// IsEmpty reports whether the input holds only whitespace.
func (p *Prompt) IsEmpty() bool {
	return p.Value() == ""
}

// SetValue replaces the input text
func (p *Prompt) SetValue(value string) {
	p.input.SetValue(truncateGraphemes(value, PromptCharLimit))
}

// Reset clears the input
func (p *Prompt) Reset() {
	p.input.Reset()
}

// SetParams sets the generation params shown under the input
func (p *Prompt) SetParams(params generation.Params) {
	p.params = params
}

// Params returns the params the next submit will use
func (p *Prompt) Params() generation.Params {
	return p.params
}

// SetBusy dims the box while a generation is in flight.
func (p *Prompt) SetBusy(busy bool) {
	p.busy = busy
}

// Length returns the prompt length in grapheme clusters.
func (p *Prompt) Length() int {
	return uniseg.GraphemeClusterCount(p.input.Value())
}

// truncateGraphemes cuts s to at most limit grapheme clusters.
func truncateGraphemes(s string, limit int) string {
	if uniseg.GraphemeClusterCount(s) <= limit {
		return s
	}
	var b strings.Builder
	gr := uniseg.NewGraphemes(s)
	for n := 0; n < limit && gr.Next(); n++ {
		b.WriteString(gr.Str())
	}
	return b.String()
}

// Update forwards input to the textarea while focused.
func (p *Prompt) Update(msg tea.Msg) (*Prompt, tea.Cmd) {
	if !p.focused {
		return p, nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if v := p.input.Value(); uniseg.GraphemeClusterCount(v) > PromptCharLimit {
		p.input.SetValue(truncateGraphemes(v, PromptCharLimit))
	}
	return p, cmd
}

// statusLine renders "<params>   n/limit" fitted to width.
func (p *Prompt) statusLine(width int) string {
	left := StatusMutedStyle.Render(p.params.String())
	if p.busy {
		left = StatusLoadingStyle.Render("generating...")
	}

	n := p.Length()
	counterStyle := StatusMutedStyle
	if n >= PromptCharLimit {
		counterStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	}
	right := counterStyle.Render(fmt.Sprintf("%d/%d", n, PromptCharLimit))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return left + strings.Repeat(" ", gap) + right
}

// View renders the prompt box
func (p *Prompt) View() string {
	style := PromptInputStyle
	if p.focused {
		style = PromptInputFocusedStyle
	}
	inner := GetViewContext().InnerWidth(p.width) - InputPaddingWidth
	content := p.input.View() + "\n" + p.statusLine(inner)
	return style.Width(p.width).Render(content)
}
