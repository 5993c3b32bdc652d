package timeline

import "capline/internal/geometry"

// zoomFactor is applied per wheel notch.
const zoomFactor = 1.1

// WheelZoom adjusts zoom about the pointer: the time under viewportX
// keeps its on-screen position across the zoom change.
func (e *Engine) WheelZoom(viewportX float64, notches int) {
	anchorTime := geometry.PixelToTime(e.Ctx.ScrollX+viewportX, e.Ctx.Zoom)

	newZoom := e.Ctx.Zoom
	for i := 0; i < notches; i++ {
		newZoom *= zoomFactor
	}
	for i := 0; i > notches; i-- {
		newZoom /= zoomFactor
	}
	newZoom = geometry.ClampZoom(newZoom)

	e.Ctx.ScrollX = geometry.ScrollForZoom(anchorTime, viewportX, newZoom)
	e.Ctx.Zoom = newZoom
}

// ScrubTo moves the playhead directly and suspends auto-follow for the
// duration of the scrub.
func (e *Engine) ScrubTo(t float64) {
	if t < 0 {
		t = 0
	}
	if t > e.Ctx.Duration {
		t = e.Ctx.Duration
	}
	e.Ctx.Playhead = t
	e.Ctx.Scrubbing = true
}

// ScrubEnd re-enables playhead auto-follow.
func (e *Engine) ScrubEnd() {
	e.Ctx.Scrubbing = false
}

// SetPlayhead moves the playhead from playback (not scrubbing).
func (e *Engine) SetPlayhead(t float64) {
	if t < 0 {
		t = 0
	}
	if t > e.Ctx.Duration {
		t = e.Ctx.Duration
	}
	e.Ctx.Playhead = t
}

// FollowPlayhead scrolls the view to keep the playhead inside the
// viewport margin. Suspended while the user is scrubbing the ruler.
func (e *Engine) FollowPlayhead() {
	if e.Ctx.Scrubbing || e.Ctx.ViewportWidth <= 0 {
		return
	}

	px := geometry.TimeToPixel(e.Ctx.Playhead, e.Ctx.Zoom)
	rel := px - e.Ctx.ScrollX

	if rel < FollowMarginPx {
		e.Ctx.ScrollX = px - FollowMarginPx
	} else if rel > e.Ctx.ViewportWidth-FollowMarginPx {
		e.Ctx.ScrollX = px - (e.Ctx.ViewportWidth - FollowMarginPx)
	}
	if e.Ctx.ScrollX < 0 {
		e.Ctx.ScrollX = 0
	}
}
