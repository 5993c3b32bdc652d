// Package geometry converts between timeline time and horizontal pixel
// position, parameterized by zoom.
package geometry

const (
	// BasePPS is the pixel-per-second scale at zoom 1.
	BasePPS = 150.0

	MinZoom = 0.2
	MaxZoom = 5.0
)

// ClampZoom bounds a zoom factor to the supported range.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// TimeToPixel maps a time in seconds to an absolute timeline pixel.
func TimeToPixel(t, zoom float64) float64 {
	return t * BasePPS * zoom
}

// PixelToTime maps an absolute timeline pixel back to seconds.
func PixelToTime(px, zoom float64) float64 {
	return px / (BasePPS * zoom)
}

// ScrollForZoom solves for the scroll offset that keeps anchorTime
// under the same viewport pixel after a zoom change, so wheel zoom
// stays centered on the pointer instead of re-centering arbitrarily.
//
// viewportX is the pointer position relative to the viewport's left
// edge; the returned offset satisfies
// TimeToPixel(anchorTime, newZoom) - offset == viewportX.
func ScrollForZoom(anchorTime, viewportX, newZoom float64) float64 {
	offset := TimeToPixel(anchorTime, newZoom) - viewportX
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Window is the visible slice of the timeline in seconds.
type Window struct {
	Start float64
	End   float64
}

// VisibleWindow computes the time range covered by a viewport of
// viewportWidth pixels scrolled to scrollX.
func VisibleWindow(scrollX, viewportWidth, zoom float64) Window {
	return Window{
		Start: PixelToTime(scrollX, zoom),
		End:   PixelToTime(scrollX+viewportWidth, zoom),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t float64) bool {
	return t >= w.Start && t <= w.End
}
