package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/ui"
)

// flashTypeByKind picks how a failure is presented in the footer. Kinds not
// listed are errors.
var flashTypeByKind = map[errors.Kind]ui.FlashType{
	errors.KindNoHistory: ui.FlashInfo,
	errors.KindInvalid:   ui.FlashWarning,
}

// ShowFlash sets the footer notice and starts its expiry ticks.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowNotice presents err to the user by its kind.
func (m *Model) ShowNotice(err error) tea.Cmd {
	flashType, ok := flashTypeByKind[errors.GetKind(err)]
	if !ok {
		flashType = ui.FlashError
	}
	return m.ShowFlash(errors.Notice(err), flashType)
}

func (m *Model) ShowFlashError(text string) tea.Cmd   { return m.ShowFlash(text, ui.FlashError) }
func (m *Model) ShowFlashWarning(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashWarning) }
func (m *Model) ShowFlashInfo(text string) tea.Cmd    { return m.ShowFlash(text, ui.FlashInfo) }
func (m *Model) ShowFlashSuccess(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashSuccess) }
