package editor

import (
	"testing"

	"capline/internal/caption"
	"capline/internal/style"
)

func initialState() State {
	return NewState([]caption.Caption{
		{Start: 0, End: 1, Text: "a"},
		{Start: 2, End: 3, Text: "b"},
	}, style.Default())
}

func setText(text string) func(State) State {
	return func(s State) State {
		s.Captions[0].Text = text
		return s
	}
}

func TestCommitAppendsAndAdvances(t *testing.T) {
	h := NewHistory(initialState())

	if err := h.Commit(setText("edited"), false); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("expected 2 snapshots, got %d", h.Len())
	}
	if h.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", h.Cursor())
	}
	if h.Current().Captions[0].Text != "edited" {
		t.Errorf("current snapshot missing the edit")
	}
}

func TestMergedGestureCollapsesToOneEntry(t *testing.T) {
	h := NewHistory(initialState())

	// a drag: many merged writes, one final commit on release
	for i := 0; i < 100; i++ {
		if err := h.Commit(func(s State) State {
			s.Captions[0].Start = float64(i) * 0.01
			s.Captions[0].End = s.Captions[0].Start + 1
			return s
		}, true); err != nil {
			t.Fatalf("merged commit %d failed: %v", i, err)
		}
	}

	if h.Len() != 1 {
		t.Fatalf("merged commits must not grow history, got %d entries", h.Len())
	}

	if err := h.Commit(func(s State) State { return s }, false); err != nil {
		t.Fatalf("final commit failed: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("expected history length 2 after gesture, got %d", h.Len())
	}
}

func TestUndoRedoRestoresExactSnapshot(t *testing.T) {
	h := NewHistory(initialState())

	before := h.Current()
	if err := h.Commit(setText("second"), false); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	after := h.Current()

	if !h.Undo() {
		t.Fatal("Undo returned false")
	}
	if !h.Current().Equal(before) {
		t.Error("undo did not restore the prior snapshot")
	}

	if !h.Redo() {
		t.Fatal("Redo returned false")
	}
	if !h.Current().Equal(after) {
		t.Error("redo did not restore the later snapshot")
	}
}

func TestUndoRedoBoundsAreNoOps(t *testing.T) {
	h := NewHistory(initialState())

	if h.Undo() {
		t.Error("Undo at the beginning should be a no-op")
	}
	if h.Redo() {
		t.Error("Redo at the end should be a no-op")
	}
	if h.Cursor() != 0 {
		t.Errorf("cursor moved: %d", h.Cursor())
	}
}

func TestBranchTruncationOnEdit(t *testing.T) {
	h := NewHistory(initialState())

	_ = h.Commit(setText("one"), false)
	_ = h.Commit(setText("two"), false)
	h.Undo()
	h.Undo()

	if err := h.Commit(setText("branch"), false); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if h.Len() != 2 {
		t.Errorf("expected redo entries dropped, got %d snapshots", h.Len())
	}
	if h.CanRedo() {
		t.Error("redo should be impossible after branch truncation")
	}
	if h.Current().Captions[0].Text != "branch" {
		t.Errorf("unexpected current text %q", h.Current().Captions[0].Text)
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	h := NewHistory(initialState())

	// the slice handed to (and returned by) the updater must not be
	// the storage history keeps
	var leaked []caption.Caption
	_ = h.Commit(func(s State) State {
		s.Captions[0].Text = "edited"
		leaked = s.Captions
		return s
	}, false)

	leaked[0].Text = "mutated after commit"

	if h.Current().Captions[0].Text != "edited" {
		t.Error("committed snapshot aliases the updater's slice")
	}

	// and the previous entry must be untouched by the edit
	h.Undo()
	if h.Current().Captions[0].Text != "a" {
		t.Errorf("prior snapshot corrupted: %q", h.Current().Captions[0].Text)
	}
}

func TestCorruptCursorGuard(t *testing.T) {
	h := NewHistory(initialState())
	h.cursor = 99

	err := h.Commit(setText("x"), false)
	if err != ErrCorruptCursor {
		t.Errorf("expected ErrCorruptCursor, got %v", err)
	}
}
