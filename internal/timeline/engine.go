package timeline

import (
	"fmt"

	"capline/internal/caption"
	"capline/internal/editor"
	"capline/internal/geometry"
	"capline/internal/style"
)

// Engine owns the gesture state machine for caption clips. All caption
// mutations flow through the history manager; reads always come from
// the snapshot at the history cursor.
type Engine struct {
	History *editor.History
	Ctx     Context
}

func NewEngine(history *editor.History, duration float64) *Engine {
	return &Engine{
		History: history,
		Ctx:     NewContext(duration),
	}
}

// captions returns the caption list of the rendered snapshot.
func (e *Engine) captions() []caption.Caption {
	return e.History.Current().Captions
}

// hitTest resolves an absolute timeline pixel to a clip and drag mode.
// A pointer within EdgeThresholdPx of a clip edge starts a resize.
func (e *Engine) hitTest(x float64) (int, DragMode, bool) {
	for i, c := range e.captions() {
		left := geometry.TimeToPixel(c.Start, e.Ctx.Zoom)
		right := geometry.TimeToPixel(c.End, e.Ctx.Zoom)
		if x < left-EdgeThresholdPx || x > right+EdgeThresholdPx {
			continue
		}
		switch {
		case abs(x-left) <= EdgeThresholdPx:
			return i, DragResizeStart, true
		case abs(x-right) <= EdgeThresholdPx:
			return i, DragResizeEnd, true
		case x > left && x < right:
			return i, DragMove, true
		}
	}
	return 0, 0, false
}

// PointerDown begins a gesture at absolute timeline pixel x. A press
// on empty timeline space clears the selection.
func (e *Engine) PointerDown(x float64) {
	idx, mode, ok := e.hitTest(x)
	if !ok {
		e.Ctx.Selected = -1
		e.Ctx.Drag = nil
		return
	}

	c := e.captions()[idx]
	e.Ctx.Selected = idx
	e.Ctx.Drag = &DragState{
		CaptionIndex:  idx,
		Mode:          mode,
		AnchorX:       x,
		OriginalStart: c.Start,
		OriginalEnd:   c.End,
	}
}

// PointerMove advances an active gesture. Each step is written as a
// merged commit so the whole drag stays one history entry.
func (e *Engine) PointerMove(x float64) error {
	if e.Ctx.Drag == nil {
		return nil
	}
	return e.applyDrag(x, true)
}

// PointerUp settles the gesture with one final non-merged commit,
// making the drag a single undoable step, then discards the drag
// state.
func (e *Engine) PointerUp(x float64) error {
	d := e.Ctx.Drag
	if d == nil {
		return nil
	}
	defer func() { e.Ctx.Drag = nil }()

	if x == d.AnchorX {
		// a click without movement selects but edits nothing
		return nil
	}
	return e.applyDrag(x, false)
}

func (e *Engine) applyDrag(x float64, merge bool) error {
	d := e.Ctx.Drag
	dt := geometry.PixelToTime(x-d.AnchorX, e.Ctx.Zoom)

	newStart := d.OriginalStart
	newEnd := d.OriginalEnd
	switch d.Mode {
	case DragMove:
		newStart += dt
		newEnd += dt
	case DragResizeStart:
		newStart += dt
	case DragResizeEnd:
		newEnd += dt
	}

	s, en, err := constrain(e.captions(), d.CaptionIndex, newStart, newEnd, d.Mode, e.Ctx)
	if err != nil {
		return err
	}

	return e.History.Commit(func(st editor.State) editor.State {
		st.Captions[d.CaptionIndex].Start = s
		st.Captions[d.CaptionIndex].End = en
		return st
	}, merge)
}

// Nudge shifts the selected caption by frames*FrameStep seconds,
// subject to the same constraints as dragging. Repeated nudges in one
// burst merge into a single pending history entry.
func (e *Engine) Nudge(frames int) error {
	idx := e.Ctx.Selected
	if idx < 0 || idx >= len(e.captions()) {
		return nil
	}

	c := e.captions()[idx]
	dt := float64(frames) * FrameStep
	s, en, err := constrain(e.captions(), idx, c.Start+dt, c.End+dt, DragMove, e.Ctx)
	if err != nil {
		return err
	}

	if err := e.History.Commit(func(st editor.State) editor.State {
		st.Captions[idx].Start = s
		st.Captions[idx].End = en
		return st
	}, true); err != nil {
		return err
	}
	e.Ctx.nudging = true
	return nil
}

// FinalizeNudge closes an open nudge burst with one non-merged commit.
func (e *Engine) FinalizeNudge() error {
	if !e.Ctx.nudging {
		return nil
	}
	e.Ctx.nudging = false
	return e.History.Commit(func(st editor.State) editor.State {
		return st
	}, false)
}

// DeleteSelected removes the selected caption as one undoable step.
func (e *Engine) DeleteSelected() error {
	idx := e.Ctx.Selected
	if idx < 0 || idx >= len(e.captions()) {
		return nil
	}
	e.Ctx.Selected = -1
	return e.History.Commit(func(st editor.State) editor.State {
		st.Captions = caption.Remove(st.Captions, idx)
		return st
	}, false)
}

// SplitAtPlayhead cuts the caption under the playhead in two. Both
// halves must satisfy the minimum duration.
func (e *Engine) SplitAtPlayhead() error {
	t := e.Ctx.Playhead
	idx := caption.FindAt(e.captions(), t)
	if idx < 0 {
		return nil
	}
	c := e.captions()[idx]
	if t-c.Start < MinDuration || c.End-t < MinDuration {
		return fmt.Errorf("split point too close to caption edge: %w", ErrNoValidPlacement)
	}

	e.Ctx.Selected = idx
	return e.History.Commit(func(st editor.State) editor.State {
		first := st.Captions[idx]
		second := first
		first.End = t
		second.Start = t
		st.Captions[idx] = first
		st.Captions, _ = caption.Insert(st.Captions, second)
		return st
	}, false)
}

// MergeWithNext joins the selected caption with its successor: the
// merged caption spans both clips (gap included) and stacks the texts.
func (e *Engine) MergeWithNext() error {
	idx := e.Ctx.Selected
	if idx < 0 || idx+1 >= len(e.captions()) {
		return nil
	}
	return e.History.Commit(func(st editor.State) editor.State {
		next := st.Captions[idx+1]
		st.Captions[idx].End = next.End
		st.Captions[idx].Text = st.Captions[idx].Text + "\n" + next.Text
		st.Captions = caption.Remove(st.Captions, idx+1)
		return st
	}, false)
}

// AddCaptionAt inserts a new caption in the free gap containing t,
// refusing when no placement of minimum duration fits.
func (e *Engine) AddCaptionAt(t, dur float64, text string) error {
	if caption.FindAt(e.captions(), t) >= 0 {
		return fmt.Errorf("time %.2f is already captioned: %w", t, ErrNoValidPlacement)
	}

	gapStart := 0.0
	gapEnd := e.Ctx.Duration
	for _, c := range e.captions() {
		if c.End <= t && c.End > gapStart {
			gapStart = c.End
		}
		if c.Start >= t && c.Start < gapEnd {
			gapEnd = c.Start
		}
	}
	if gapEnd-gapStart < MinDuration {
		return ErrNoValidPlacement
	}

	start := t
	end := t + dur
	if end > gapEnd {
		end = gapEnd
		start = end - dur
	}
	if start < gapStart {
		start = gapStart
	}
	if end-start < MinDuration {
		end = start + MinDuration
	}

	return e.History.Commit(func(st editor.State) editor.State {
		var idx int
		st.Captions, idx = caption.Insert(st.Captions, caption.Caption{
			Start: start,
			End:   end,
			Text:  text,
		})
		e.Ctx.Selected = idx
		return st
	}, false)
}

// SetCaptionText rewrites the text of the caption at idx.
func (e *Engine) SetCaptionText(idx int, text string) error {
	if idx < 0 || idx >= len(e.captions()) {
		return nil
	}
	return e.History.Commit(func(st editor.State) editor.State {
		st.Captions[idx].Text = text
		return st
	}, false)
}

// UpdateStyles applies a style change. Slider-style continuous changes
// pass merge=true and finalize later with CommitStyles.
func (e *Engine) UpdateStyles(update func(style.Options) style.Options, merge bool) error {
	return e.History.Commit(func(st editor.State) editor.State {
		st.Styles = update(st.Styles)
		return st
	}, merge)
}
