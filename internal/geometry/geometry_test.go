package geometry

import (
	"math"
	"testing"
)

func TestTimeToPixelScale(t *testing.T) {
	tests := []struct {
		time float64
		zoom float64
		want float64
	}{
		{0, 1, 0},
		{1, 1, 150},
		{2, 0.5, 150},
		{1, 5, 750},
		{10, 0.2, 300},
	}

	for _, tt := range tests {
		if got := TimeToPixel(tt.time, tt.zoom); got != tt.want {
			t.Errorf("TimeToPixel(%v, %v): expected %v, got %v",
				tt.time, tt.zoom, tt.want, got)
		}
	}
}

func TestPixelTimeRoundTrip(t *testing.T) {
	for _, zoom := range []float64{0.2, 0.5, 1, 2.37, 5} {
		for tm := 0.0; tm <= 600; tm += 7.31 {
			got := PixelToTime(TimeToPixel(tm, zoom), zoom)
			if math.Abs(got-tm) > 1e-9 {
				t.Errorf("round trip at t=%v zoom=%v drifted to %v", tm, zoom, got)
			}
		}
	}
}

func TestClampZoom(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.01, 0.2},
		{0.2, 0.2},
		{1, 1},
		{5, 5},
		{20, 5},
	}

	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Errorf("ClampZoom(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestScrollForZoomKeepsAnchorUnderPointer(t *testing.T) {
	// the time under the pointer must stay under the pointer across a
	// zoom change
	anchorTime := 12.5
	viewportX := 340.0

	for _, newZoom := range []float64{0.2, 0.8, 1.7, 5} {
		offset := ScrollForZoom(anchorTime, viewportX, newZoom)
		got := TimeToPixel(anchorTime, newZoom) - offset
		if offset >= 0 && math.Abs(got-viewportX) > 1e-9 {
			t.Errorf("zoom %v: anchor lands at %v, expected %v", newZoom, got, viewportX)
		}
	}
}

func TestScrollForZoomClampsToZero(t *testing.T) {
	// anchor near t=0 with a pointer far right would need negative
	// scroll; it clamps instead
	offset := ScrollForZoom(0.1, 500, 1)
	if offset != 0 {
		t.Errorf("expected clamped offset 0, got %v", offset)
	}
}

func TestVisibleWindow(t *testing.T) {
	w := VisibleWindow(300, 600, 1)
	if w.Start != 2 || w.End != 6 {
		t.Errorf("expected window [2, 6], got [%v, %v]", w.Start, w.End)
	}
	if !w.Contains(2) || !w.Contains(6) || w.Contains(6.1) {
		t.Error("window containment incorrect")
	}
}
