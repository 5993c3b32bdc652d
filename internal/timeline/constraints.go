package timeline

import (
	"errors"

	"capline/internal/caption"
	"capline/internal/geometry"
)

// ErrNoValidPlacement means no position satisfying the minimum
// duration exists between the neighbors; the edit is refused and the
// caller surfaces a notice instead of leaving an invalid caption.
var ErrNoValidPlacement = errors.New("no valid placement for caption")

// constrain runs a proposed (newStart, newEnd) for the caption at idx
// through the constraint pipeline: absolute bounds, neighbor clamps,
// playhead snap, minimum duration floor, and, for moves, duration
// reconstitution at the timeline boundaries.
//
// Snapping is applied after clamping and the result re-clamped, so a
// snapped edge may legally rest exactly on a neighbor boundary.
func constrain(
	captions []caption.Caption,
	idx int,
	newStart, newEnd float64,
	mode DragMode,
	ctx Context,
) (float64, float64, error) {
	prevEnd := 0.0
	if idx > 0 {
		prevEnd = captions[idx-1].End
	}
	nextStart := ctx.Duration
	if idx < len(captions)-1 {
		nextStart = captions[idx+1].Start
	}

	if nextStart-prevEnd < MinDuration {
		return 0, 0, ErrNoValidPlacement
	}

	origDur := newEnd - newStart

	clampWindow := func(s, e float64) (float64, float64) {
		if s < 0 {
			s = 0
		}
		if e > ctx.Duration {
			e = ctx.Duration
		}
		if s < prevEnd {
			s = prevEnd
		}
		if e > nextStart {
			e = nextStart
		}
		return s, e
	}

	if mode == DragMove {
		// shift as a unit, then clamp preserving duration
		newStart, newEnd = clampWindow(newStart, newEnd)
		if newEnd-newStart < origDur {
			if newStart <= prevEnd || newStart <= 0 {
				newEnd = newStart + origDur
			} else {
				newStart = newEnd - origDur
			}
			newStart, newEnd = clampWindow(newStart, newEnd)
		}

		// snap whichever edge is nearer the playhead, keeping duration
		dur := newEnd - newStart
		if ds, ok := snapDelta(newStart, ctx); ok {
			if de, ok2 := snapDelta(newEnd, ctx); !ok2 || abs(ds) <= abs(de) {
				newStart += ds
				newEnd = newStart + dur
			} else {
				newEnd += de
				newStart = newEnd - dur
			}
		} else if de, ok := snapDelta(newEnd, ctx); ok {
			newEnd += de
			newStart = newEnd - dur
		}
		newStart, newEnd = clampWindow(newStart, newEnd)

		// landing on an absolute boundary must not silently shrink the
		// clip: reconstitute the far edge
		if newEnd-newStart < dur-1e-9 {
			if newStart == 0 {
				newEnd = min(dur, nextStart)
			} else if newEnd == ctx.Duration {
				newStart = max(ctx.Duration-dur, prevEnd)
			}
		}

		if newEnd-newStart < MinDuration {
			return 0, 0, ErrNoValidPlacement
		}
		return newStart, newEnd, nil
	}

	// resize: only one edge moves
	newStart, newEnd = clampWindow(newStart, newEnd)

	if mode == DragResizeStart {
		if d, ok := snapDelta(newStart, ctx); ok {
			newStart += d
		}
		newStart, newEnd = clampWindow(newStart, newEnd)
		if newEnd-newStart < MinDuration {
			newStart = newEnd - MinDuration
		}
	} else {
		if d, ok := snapDelta(newEnd, ctx); ok {
			newEnd += d
		}
		newStart, newEnd = clampWindow(newStart, newEnd)
		if newEnd-newStart < MinDuration {
			newEnd = newStart + MinDuration
		}
	}

	newStart, newEnd = clampWindow(newStart, newEnd)
	if newEnd-newStart < MinDuration-1e-9 {
		return 0, 0, ErrNoValidPlacement
	}
	return newStart, newEnd, nil
}

// snapDelta returns the adjustment that would place t exactly on the
// playhead, if t is within the snap threshold at the current zoom.
func snapDelta(t float64, ctx Context) (float64, bool) {
	thresholdSec := geometry.PixelToTime(SnapThresholdPx, ctx.Zoom)
	d := ctx.Playhead - t
	if abs(d) <= thresholdSec {
		return d, true
	}
	return 0, false
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
