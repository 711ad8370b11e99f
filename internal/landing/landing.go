// Package landing holds the product tour shown on first run and by
// `dryink features`.
package landing

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const (
	Headline = "Bring Learning to Life with Dryink"
	Blurb    = "Turn complex concepts into dynamic, engaging animations in seconds. " +
		"Dryink empowers educators, creators, and students to bring lessons to life " +
		"through visually compelling, AI-generated videos. No design or animation skills required."
)

// Accent is the brand color used for headings.
var Accent = lipgloss.Color("#4a3294")

// Step is one stage of the tour.
type Step struct {
	Number  int
	Title   string
	Text    string
	SubText string
}

// Heading returns "N. Title".
func (s Step) Heading() string {
	return fmt.Sprintf("%d. %s", s.Number, s.Title)
}

var steps = []Step{
	{1, "Enter Your Prompt",
		"Start by describing the video you envision. Be as detailed as possible to guide the AI.",
		"Tell the AI your story idea, characters, setting, and desired mood."},
	{2, "AI Generates Your Video",
		"Our intelligent AI takes your prompt and transforms it into a unique video.",
		"Sit back and watch as the AI brings your vision to life, frame by frame."},
	{3, "Download Your Creation",
		"Once complete, your video is ready for download in high quality.",
		"Get your masterpiece in a format that's perfect for sharing."},
	{4, "Refine with Follow-up Prompts",
		"Need tweaks? Provide additional prompts to fine-tune your video.",
		"Iterate and perfect your creation until it's exactly what you imagined."},
}

// Steps returns the tour in order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Render lays the tour out for a terminal of the given width. A width of
// zero or less disables wrapping.
func Render(width int) string {
	headline := lipgloss.NewStyle().Bold(true).Foreground(Accent)
	heading := lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginTop(1)
	text := lipgloss.NewStyle()
	sub := lipgloss.NewStyle().Faint(true)
	if width > 0 {
		text = text.Width(width)
		sub = sub.Width(width)
	}

	var b strings.Builder
	b.WriteString(headline.Render(Headline))
	b.WriteString("\n\n")
	b.WriteString(text.Render(Blurb))
	b.WriteString("\n")
	for _, s := range steps {
		b.WriteString(heading.Render(s.Heading()))
		b.WriteString("\n")
		b.WriteString(text.Render(s.Text))
		b.WriteString("\n")
		b.WriteString(sub.Render(s.SubText))
		b.WriteString("\n")
	}
	return b.String()
}
