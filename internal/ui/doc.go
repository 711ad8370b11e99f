// Package ui provides the user interface components for the dryink TUI.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────┬───────────────────────────────────┤
//	│                 │  Video Panel                      │
//	│   Sidebar       │  (current entry, preview, tour)   │
//	│   (1/4 width)   ├───────────────────────────────────┤
//	│                 │  Prompt (textarea + params line)  │
//	├─────────────────┴───────────────────────────────────┤
//	│ Footer (1 line, or a flash notice)                  │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton holding the layout math. All size calculations go
// through it.
//
// Header: Application title on a gradient, with the session title and the
// signed-in user on the right.
//
// Footer: Context-aware key bindings. A flash notice (SetFlash) replaces
// the bindings until it expires; the app drives expiry with FlashTick.
//
// Sidebar: Prior chat sessions from the backend, with a loading spinner,
// empty/signed-out/error states, and "/" search.
//
// VideoPanel: The entry at the history cursor (prompt, signed URL, response),
// a read-only session preview, or the landing tour. Shows a spinner and a
// stopwatch while a generation is in flight. Supports mouse text selection.
//
// Prompt: Multi-line input. Enter belongs to the app (submit); shift+enter
// inserts a newline. The line under it shows the params and a counter.
//
// Modal: Hosts one modals.ModalState at a time, centered on screen.
//
// # Themes
//
// SetTheme swaps the palette and regenerates every style variable, then
// pushes the new styles into the modals package.
package ui
