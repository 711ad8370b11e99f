// Package notification sends desktop notifications through beeep on macOS,
// Linux and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/dryink/dryink/internal/logger"
)

// AppName is the notification title.
const AppName = "Dryink"

// maxPromptLen bounds the prompt quoted in a notification body.
const maxPromptLen = 60

var notify = beeep.Notify

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title)
	if err := notify(title, message, ""); err != nil {
		log.Warn("notification failed", "error", err)
		return err
	}
	return nil
}

// GenerationReady announces that the video for prompt has finished.
func GenerationReady(prompt string) error {
	return Send(AppName, shorten(prompt)+" is ready")
}

func shorten(s string) string {
	r := []rune(s)
	if len(r) <= maxPromptLen {
		return s
	}
	return string(r[:maxPromptLen-1]) + "…"
}
