package app

import (
	"errors"
	"testing"

	dryerrors "github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/ui"
)

func TestShowNotice(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantText string
		wantType ui.FlashType
	}{
		{"no history", dryerrors.NoHistory("redo"), "No more history to redo", ui.FlashInfo},
		{"busy", dryerrors.GenerationInProgress(), "generation already in progress", ui.FlashWarning},
		{"rejected", dryerrors.BackendRejected("generation.Generate", "Quota exceeded"), "Quota exceeded", ui.FlashError},
		{"plain error", errors.New("disk full"), "disk full", ui.FlashError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModel(t, &fakeBackend{})
			if cmd := m.ShowNotice(tt.err); cmd == nil {
				t.Error("expected a flash tick")
			}
			f := m.footer.Flash()
			if f == nil {
				t.Fatal("expected a flash")
			}
			if f.Text != tt.wantText || f.Type != tt.wantType {
				t.Errorf("got (%q, %v), want (%q, %v)", f.Text, f.Type, tt.wantText, tt.wantType)
			}
		})
	}
}
