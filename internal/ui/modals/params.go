package modals

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/generation"
)

// =============================================================================
// ParamsState - generation parameters for the next submission
// =============================================================================

type ParamsState struct {
	width      string
	height     string
	fps        string
	frameCount string
	saveAsDef  bool

	form *huh.Form
}

func (*ParamsState) modalState() {}

func (s *ParamsState) Title() string { return "Video Settings" }

func (s *ParamsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *ParamsState) Render() string {
	title := look.Title.Render(s.Title())

	summary := lipgloss.NewStyle().Foreground(look.Muted).Italic(true)
	preview := summary.Render("Invalid settings")
	if p, err := s.Params(); err == nil {
		preview = summary.Render(p.String())
	}

	help := look.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), preview, help)
}

func (s *ParamsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Params parses the form fields. The result has passed Params.Validate.
func (s *ParamsState) Params() (generation.Params, error) {
	var p generation.Params
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"width", s.width, &p.Width},
		{"height", s.height, &p.Height},
		{"fps", s.fps, &p.FPS},
		{"frame count", s.frameCount, &p.FrameCount},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f.raw))
		if err != nil {
			return generation.Params{}, fmt.Errorf("%s must be a whole number", f.name)
		}
		*f.dst = n
	}
	if err := p.Validate(); err != nil {
		return generation.Params{}, err
	}
	return p, nil
}

// SaveAsDefault reports whether the user asked to persist these values.
func (s *ParamsState) SaveAsDefault() bool {
	return s.saveAsDef
}

func positiveInt(limit int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n <= 0 {
			return fmt.Errorf("must be positive")
		}
		if n > limit {
			return fmt.Errorf("must be at most %d", limit)
		}
		return nil
	}
}

// NewParamsState creates the form prefilled with current.
func NewParamsState(current generation.Params) *ParamsState {
	s := &ParamsState{
		width:      strconv.Itoa(current.Width),
		height:     strconv.Itoa(current.Height),
		fps:        strconv.Itoa(current.FPS),
		frameCount: strconv.Itoa(current.FrameCount),
	}

	input := func(title string, value *string, limit int) *huh.Input {
		return huh.NewInput().
			Title(title).
			CharLimit(6).
			Validate(positiveInt(limit)).
			Value(value)
	}

	s.form = newForm(Width-8, nil,
		input("Width (px)", &s.width, generation.MaxDimension),
		input("Height (px)", &s.height, generation.MaxDimension),
		input("Frame rate (fps)", &s.fps, generation.MaxFPS),
		input("Frame count", &s.frameCount, generation.MaxFrameCount),
		huh.NewConfirm().
			Title("Use as default for new sessions").
			Affirmative("Yes").
			Negative("No").
			Value(&s.saveAsDef),
	)

	return s
}
