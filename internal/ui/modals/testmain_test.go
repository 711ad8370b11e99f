package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/dryink/dryink/internal/logger"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the dashboard log
	logger.Reset()
	logger.Init(os.DevNull)

	plain := lipgloss.NewStyle()
	Apply(Look{
		Title: plain, Help: plain, Item: plain, Selected: plain.Bold(true), Error: plain,
		Palette: Palette{
			Primary:   lipgloss.Color("#4a3294"),
			Secondary: lipgloss.Color("#06B6D4"),
			Text:      lipgloss.Color("#F9FAFB"),
			Muted:     lipgloss.Color("#9CA3AF"),
			Inverse:   lipgloss.Color("#1F2937"),
			Warning:   lipgloss.Color("#F59E0B"),
		},
	})

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
