package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/dryink/dryink/internal/errors"
)

func entry(n int) Entry {
	return Entry{
		VideoURL:          fmt.Sprintf("https://cdn.example/v%d.mp4", n),
		Prompt:            fmt.Sprintf("prompt %d", n),
		GeneratedResponse: fmt.Sprintf("response %d", n),
	}
}

func TestNew_Empty(t *testing.T) {
	for name, h := range map[string]History{"New": New(), "zero value": {}} {
		t.Run(name, func(t *testing.T) {
			if h.Cursor() != -1 {
				t.Errorf("Cursor() = %d, want -1", h.Cursor())
			}
			if h.Len() != 0 {
				t.Errorf("Len() = %d, want 0", h.Len())
			}
			if _, ok := h.Current(); ok {
				t.Error("Current() should report no entry")
			}
			if h.CanUndo() || h.CanRedo() {
				t.Error("empty history should not allow undo or redo")
			}
		})
	}
}

func TestPush_MovesCursorToTail(t *testing.T) {
	h := New()
	for i := 1; i <= 5; i++ {
		h = h.Push(entry(i))
		if h.Len() != i {
			t.Fatalf("after %d pushes Len() = %d", i, h.Len())
		}
		if h.Cursor() != h.Len()-1 {
			t.Fatalf("after %d pushes Cursor() = %d, want %d", i, h.Cursor(), h.Len()-1)
		}
		cur, _ := h.Current()
		if cur != entry(i) {
			t.Fatalf("Current() = %+v, want %+v", cur, entry(i))
		}
	}
}

func TestPush_DoesNotMutateReceiver(t *testing.T) {
	base := New().Push(entry(1)).Push(entry(2))
	undone, _, err := base.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}

	branched := undone.Push(entry(3))

	if got := base.Entries(); !reflect.DeepEqual(got, []Entry{entry(1), entry(2)}) {
		t.Errorf("base entries changed: %+v", got)
	}
	if got := undone.Entries(); !reflect.DeepEqual(got, []Entry{entry(1), entry(2)}) {
		t.Errorf("undone entries changed: %+v", got)
	}
	if got := branched.Entries(); !reflect.DeepEqual(got, []Entry{entry(1), entry(3)}) {
		t.Errorf("branched entries = %+v", got)
	}
}

func TestPush_AfterUndoTruncatesForwardHistory(t *testing.T) {
	h := New().Push(entry(1)).Push(entry(2)).Push(entry(3))
	var err error
	for i := 0; i < 2; i++ {
		if h, _, err = h.Undo(); err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
	}
	if h.Cursor() != 0 {
		t.Fatalf("Cursor() = %d, want 0", h.Cursor())
	}

	h = h.Push(entry(4))

	want := []Entry{entry(1), entry(4)}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("Entries() = %+v, want %+v", got, want)
	}
	if h.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", h.Cursor())
	}
	if h.CanRedo() {
		t.Error("CanRedo() should be false after branching")
	}
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	h := New().Push(entry(1)).Push(entry(2)).Push(entry(3))
	if !h.CanUndo() {
		t.Fatal("CanUndo() should be true")
	}
	before, _ := h.Current()

	h, undone, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if undone != entry(2) {
		t.Errorf("Undo returned %+v, want %+v", undone, entry(2))
	}

	h, redone, err := h.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if redone != before {
		t.Errorf("Redo returned %+v, want %+v", redone, before)
	}
	if h.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", h.Cursor())
	}
}

func TestUndo_AtFirstEntry(t *testing.T) {
	h := New().Push(entry(1))

	next, got, err := h.Undo()
	if !errors.Is(err, errors.KindNoHistory) {
		t.Fatalf("err = %v, want NoHistory", err)
	}
	if errors.Notice(err) != "No more history to undo" {
		t.Errorf("Notice = %q", errors.Notice(err))
	}
	if got != (Entry{}) {
		t.Errorf("entry = %+v, want zero", got)
	}
	if !reflect.DeepEqual(next, h) {
		t.Error("history should be unchanged")
	}
}

func TestRedo_AtLastEntry(t *testing.T) {
	h := New().Push(entry(1)).Push(entry(2))

	next, _, err := h.Redo()
	if !errors.Is(err, errors.KindNoHistory) {
		t.Fatalf("err = %v, want NoHistory", err)
	}
	if errors.Notice(err) != "No more history to redo" {
		t.Errorf("Notice = %q", errors.Notice(err))
	}
	if !reflect.DeepEqual(next, h) {
		t.Error("history should be unchanged")
	}
}

func TestUndoRedo_Empty(t *testing.T) {
	h := New()
	if _, _, err := h.Undo(); !errors.Is(err, errors.KindNoHistory) {
		t.Errorf("Undo on empty: err = %v", err)
	}
	if _, _, err := h.Redo(); !errors.Is(err, errors.KindNoHistory) {
		t.Errorf("Redo on empty: err = %v", err)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	h := New().Push(entry(1))
	got := h.Entries()
	got[0].Prompt = "changed"

	cur, _ := h.Current()
	if cur.Prompt != "prompt 1" {
		t.Errorf("mutating Entries() result leaked into history: %q", cur.Prompt)
	}
}

func TestCursorInvariant_RandomWalk(t *testing.T) {
	// Deterministic op sequence: p=push u=undo r=redo
	ops := "ppuuprrupppuuuurrrrpuu"
	h := New()
	n := 0
	for i, op := range ops {
		switch op {
		case 'p':
			n++
			h = h.Push(entry(n))
		case 'u':
			h, _, _ = h.Undo()
		case 'r':
			h, _, _ = h.Redo()
		}
		if c := h.Cursor(); c < -1 || c >= h.Len() || (h.Len() > 0 && c < 0) {
			t.Fatalf("op %d (%c): cursor %d out of range for len %d", i, op, c, h.Len())
		}
	}
}
