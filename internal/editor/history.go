package editor

import "errors"

// ErrCorruptCursor is returned when the history cursor no longer
// references a valid snapshot. Callers treat it as a refused edit
// rather than a fatal condition.
var ErrCorruptCursor = errors.New("history cursor out of range")

// History is a linear undo/redo stack over full State snapshots.
//
// Continuous gestures (drags, slider movement, key-repeat nudges)
// write with merge=true, which overwrites the current entry in place;
// the gesture's final non-merged commit is what appends a new entry.
// A whole gesture therefore collapses into at most one undoable step.
type History struct {
	snapshots []State
	cursor    int
}

// NewHistory starts a history with the given initial snapshot.
func NewHistory(initial State) *History {
	return &History{snapshots: []State{initial.Clone()}}
}

// Current returns the snapshot under the cursor. This is always the
// state being rendered.
func (h *History) Current() State {
	return h.snapshots[h.cursor]
}

// Len reports the number of committed snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the current history position.
func (h *History) Cursor() int {
	return h.cursor
}

// Commit applies updater to the current snapshot and records the
// result.
//
// With merge=false the redo branch beyond the cursor is truncated, the
// new snapshot appended, and the cursor advanced. With merge=true the
// entry at the cursor is replaced in place: no growth, no cursor move.
func (h *History) Commit(updater func(State) State, merge bool) error {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return ErrCorruptCursor
	}

	next := updater(h.snapshots[h.cursor].Clone()).Clone()

	if merge {
		h.snapshots[h.cursor] = next
		return nil
	}

	h.snapshots = append(h.snapshots[:h.cursor+1], next)
	h.cursor++
	return nil
}

// Undo steps the cursor back one snapshot. No-op at the beginning.
func (h *History) Undo() bool {
	if h.cursor <= 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo steps the cursor forward one snapshot. No-op at the end.
func (h *History) Redo() bool {
	if h.cursor >= len(h.snapshots)-1 {
		return false
	}
	h.cursor++
	return true
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }
