// Package history tracks the generated videos of one conversation as a linear
// list with a cursor. Values are immutable: every transition returns a new
// History and leaves the receiver untouched.
package history

import (
	"github.com/dryink/dryink/internal/errors"
)

// Entry is one generated video.
type Entry struct {
	VideoURL          string `json:"videoUrl"`
	Prompt            string `json:"prompt"`
	GeneratedResponse string `json:"generatedResponse"`
}

// History is an ordered list of entries and a cursor into it.
// The zero value is an empty history with cursor -1.
type History struct {
	entries []Entry
	cursor  int
	init    bool
}

// New returns an empty history.
func New() History {
	return History{cursor: -1, init: true}
}

// Cursor returns the index of the displayed entry, or -1 when empty.
func (h History) Cursor() int {
	if !h.init {
		return -1
	}
	return h.cursor
}

// Len returns the number of entries.
func (h History) Len() int { return len(h.entries) }

// Entries returns a copy of the entries in generation order.
func (h History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Current returns the entry under the cursor.
func (h History) Current() (Entry, bool) {
	c := h.Cursor()
	if c < 0 {
		return Entry{}, false
	}
	return h.entries[c], true
}

func (h History) CanUndo() bool { return h.Cursor() > 0 }

func (h History) CanRedo() bool { return h.Cursor() < len(h.entries)-1 }

// Push drops everything after the cursor, appends e and moves the cursor to it.
func (h History) Push(e Entry) History {
	keep := h.Cursor() + 1
	entries := make([]Entry, keep, keep+1)
	copy(entries, h.entries[:keep])
	entries = append(entries, e)
	return History{entries: entries, cursor: len(entries) - 1, init: true}
}

// Undo moves the cursor back one entry. At the first entry it returns the
// receiver unchanged and a NoHistory error.
func (h History) Undo() (History, Entry, error) {
	if !h.CanUndo() {
		return h, Entry{}, errors.NoHistory("undo")
	}
	next := History{entries: h.entries, cursor: h.cursor - 1, init: true}
	return next, next.entries[next.cursor], nil
}

// Redo moves the cursor forward one entry. At the last entry it returns the
// receiver unchanged and a NoHistory error.
func (h History) Redo() (History, Entry, error) {
	if !h.CanRedo() {
		return h, Entry{}, errors.NoHistory("redo")
	}
	next := History{entries: h.entries, cursor: h.cursor + 1, init: true}
	return next, next.entries[next.cursor], nil
}
