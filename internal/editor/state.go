// Package editor holds the editable document state and its undo/redo
// history stack.
package editor

import (
	"capline/internal/caption"
	"capline/internal/style"
)

// State is one immutable snapshot of the document: the caption list
// plus the style configuration. One snapshot is one point in history.
type State struct {
	Captions []caption.Caption
	Styles   style.Options
}

// NewState builds the initial snapshot from collaborator captions,
// sorting them so the adjacency invariants hold from the start.
func NewState(captions []caption.Caption, styles style.Options) State {
	sorted := caption.Clone(captions)
	caption.Sort(sorted)
	return State{Captions: sorted, Styles: styles}
}

// Clone returns an independent copy. The caption slice is copied so a
// snapshot can be restored without aliasing hazards; Styles is a flat
// value and copies by assignment.
func (s State) Clone() State {
	return State{
		Captions: caption.Clone(s.Captions),
		Styles:   s.Styles,
	}
}

// Equal reports structural equality between snapshots.
func (s State) Equal(other State) bool {
	if s.Styles != other.Styles {
		return false
	}
	if len(s.Captions) != len(other.Captions) {
		return false
	}
	for i := range s.Captions {
		if s.Captions[i] != other.Captions[i] {
			return false
		}
	}
	return true
}
