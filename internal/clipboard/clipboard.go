// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/dryink/dryink/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error
)

// Init initializes the clipboard. Safe to call multiple times; a failure is
// remembered so headless sessions don't retry on every copy.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return initErr
	}
	initialized = true

	if err := clipboard.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("native clipboard unavailable", "error", err)
		initErr = fmt.Errorf("failed to initialize clipboard: %w", err)
		return initErr
	}
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText puts text on the native clipboard. Terminals that support OSC 52
// also receive the text through tea.SetClipboard, so a failure here is not
// fatal to the caller.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
