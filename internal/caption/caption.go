package caption

import (
	"fmt"
	"sort"
	"strings"
)

// Caption is a single timed text segment. Times are in seconds.
type Caption struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func (c Caption) Duration() float64 {
	return c.End - c.Start
}

// Contains reports whether t falls inside the half-open window [Start, End).
func (c Caption) Contains(t float64) bool {
	return t >= c.Start && t < c.End
}

// Sort orders captions by start time in place. Collaborator input
// (transcription segments) arrives unsorted.
func Sort(captions []Caption) {
	sort.SliceStable(captions, func(i, j int) bool {
		return captions[i].Start < captions[j].Start
	})
}

// FindAt returns the index of the caption active at time t, or -1.
// Captions are non-overlapping, so at most one matches.
func FindAt(captions []Caption, t float64) int {
	for i, c := range captions {
		if c.Contains(t) {
			return i
		}
	}
	return -1
}

// Validate checks ordering and adjacency invariants on a sorted list.
func Validate(captions []Caption) error {
	for i, c := range captions {
		if c.Start >= c.End {
			return fmt.Errorf(
				"caption %d: start %.3f is not before end %.3f",
				i, c.Start, c.End,
			)
		}
		if i > 0 && captions[i-1].End > c.Start {
			return fmt.Errorf(
				"caption %d overlaps previous (prev end %.3f > start %.3f)",
				i, captions[i-1].End, c.Start,
			)
		}
	}
	return nil
}

// Clone returns an independent copy of the caption list.
func Clone(captions []Caption) []Caption {
	if captions == nil {
		return nil
	}
	out := make([]Caption, len(captions))
	copy(out, captions)
	return out
}

// Insert adds a caption keeping the list sorted by start time and
// returns the index it landed at.
func Insert(captions []Caption, c Caption) ([]Caption, int) {
	idx := sort.Search(len(captions), func(i int) bool {
		return captions[i].Start > c.Start
	})
	out := make([]Caption, 0, len(captions)+1)
	out = append(out, captions[:idx]...)
	out = append(out, c)
	out = append(out, captions[idx:]...)
	return out, idx
}

// Remove deletes the caption at index, returning a new slice.
func Remove(captions []Caption, idx int) []Caption {
	if idx < 0 || idx >= len(captions) {
		return captions
	}
	out := make([]Caption, 0, len(captions)-1)
	out = append(out, captions[:idx]...)
	out = append(out, captions[idx+1:]...)
	return out
}

// JoinLines normalizes explicit line breaks to single spaces, used when
// measuring a caption for single-line display contexts.
func JoinLines(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
