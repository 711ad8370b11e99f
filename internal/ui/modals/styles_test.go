package modals

import (
	"image/color"
	"testing"

	"charm.land/bubbles/v2/textarea"
)

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestApplyTextareaStyles(t *testing.T) {
	ta := textarea.New()
	ApplyTextareaStyles(&ta)

	styles := ta.Styles()
	states := map[string]textarea.StyleState{"focused": styles.Focused, "blurred": styles.Blurred}
	for name, st := range states {
		if !sameColor(st.Text.GetForeground(), look.Text) {
			t.Errorf("%s text color = %v, want %v", name, st.Text.GetForeground(), look.Text)
		}
		if !sameColor(st.CursorLine.GetForeground(), look.Text) {
			t.Errorf("%s cursor line color = %v, want %v", name, st.CursorLine.GetForeground(), look.Text)
		}
		if !sameColor(st.Placeholder.GetForeground(), look.Muted) {
			t.Errorf("%s placeholder color = %v, want %v", name, st.Placeholder.GetForeground(), look.Muted)
		}
	}
}
