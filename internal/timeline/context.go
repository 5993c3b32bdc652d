// Package timeline implements the caption clip interaction engine:
// drag and resize gestures, playhead snapping, neighbor constraints,
// keyboard nudging, and zoom/scroll bookkeeping.
//
// The engine is a set of pure transitions over an explicit Context
// value fed by a serialized event stream, so it is testable without a
// live display.
package timeline

const (
	// EdgeThresholdPx classifies a pointer-down within this many pixels
	// of a clip edge as a resize instead of a move.
	EdgeThresholdPx = 8.0

	// SnapThresholdPx is how close (in pixels) a dragged edge must come
	// to the playhead before it snaps exactly onto it.
	SnapThresholdPx = 8.0

	// MinDuration is the floor for any caption, in seconds.
	MinDuration = 0.1

	// FrameStep is one keyboard nudge, in seconds (one frame at 30fps).
	FrameStep = 1.0 / 30.0

	// FollowMarginPx keeps the playhead at least this far from the
	// viewport edges during auto-scroll.
	FollowMarginPx = 40.0
)

// DragMode says which part of a clip a gesture manipulates.
type DragMode int

const (
	DragMove DragMode = iota
	DragResizeStart
	DragResizeEnd
)

// DragState is the transient record of one pointer-down-to-pointer-up
// gesture. It never enters history; it is discarded on release.
type DragState struct {
	CaptionIndex  int
	Mode          DragMode
	AnchorX       float64
	OriginalStart float64
	OriginalEnd   float64
}

// Context is the interaction state the engine reads and writes. It is
// deliberately a plain value rather than ambient fields on a view.
type Context struct {
	// Duration is the length of the source video in seconds.
	Duration float64

	Playhead float64

	Zoom          float64
	ScrollX       float64
	ViewportWidth float64

	// Selected is the index of the selected caption, or -1.
	Selected int

	// Drag is non-nil while a pointer gesture is in progress.
	Drag *DragState

	// Scrubbing suspends playhead auto-follow while the user drags the
	// ruler, so the view does not fight the pointer.
	Scrubbing bool

	// nudging marks an open key-repeat burst awaiting finalization.
	nudging bool
}

// NewContext builds the initial interaction state for a video of the
// given duration.
func NewContext(duration float64) Context {
	return Context{
		Duration: duration,
		Zoom:     1.0,
		Selected: -1,
	}
}
