package render

import (
	"bytes"
	"image"
	"testing"

	"capline/internal/style"
)

func newSurface() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, int(testWidth), int(testHeight)))
}

func TestDrawIsDeterministic(t *testing.T) {
	styles := testStyles()
	styles.Effect = style.EffectShadow

	a := newSurface()
	b := newSurface()

	ba, err := Draw(a, "Deterministic output", styles, testWidth, testHeight)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	bb, err := Draw(b, "Deterministic output", styles, testWidth, testHeight)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if ba != bb {
		t.Errorf("bounds differ across identical calls: %+v vs %+v", ba, bb)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("pixels differ across identical calls")
	}
}

func TestDrawEffectsDoNotBleed(t *testing.T) {
	plain := testStyles()
	plain.Effect = style.EffectNone

	// a shadowed draw in between must not change a later plain draw
	reference := newSurface()
	if _, err := Draw(reference, "text", plain, testWidth, testHeight); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	shadowed := testStyles()
	shadowed.Effect = style.EffectShadow
	scratch := newSurface()
	if _, err := Draw(scratch, "other", shadowed, testWidth, testHeight); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	after := newSurface()
	if _, err := Draw(after, "text", plain, testWidth, testHeight); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if !bytes.Equal(reference.Pix, after.Pix) {
		t.Error("shadow state leaked into a later plain draw")
	}
}

func TestDrawPaintsInsideReturnedBounds(t *testing.T) {
	dst := newSurface()
	bounds, err := Draw(dst, "Hi", testStyles(), testWidth, testHeight)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if bounds.Width <= 0 || bounds.Height <= 0 {
		t.Fatalf("expected non-empty bounds, got %+v", bounds)
	}

	painted := false
	for y := int(bounds.Y); y < int(bounds.Y+bounds.Height); y++ {
		for x := int(bounds.X); x < int(bounds.X+bounds.Width); x++ {
			_, _, _, a := dst.At(x, y).RGBA()
			if a > 0 {
				painted = true
			}
		}
	}
	if !painted {
		t.Error("nothing painted inside the returned bounds")
	}

	// nothing outside a small margin around the box should be touched
	outside := dst.RGBAAt(0, 0)
	if outside.A != 0 {
		t.Error("pixel far outside the caption box was painted")
	}
}

func TestDrawEmptyTextIsNoOp(t *testing.T) {
	dst := newSurface()
	bounds, err := Draw(dst, "   ", testStyles(), testWidth, testHeight)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	if bounds != (Bounds{}) {
		t.Errorf("expected zero bounds, got %+v", bounds)
	}

	empty := newSurface()
	if !bytes.Equal(dst.Pix, empty.Pix) {
		t.Error("empty text painted pixels")
	}
}

func TestOutlinePaintsStrokeColor(t *testing.T) {
	styles := testStyles()
	styles.Effect = style.EffectOutline
	styles.StrokeColor = "#ff0000"
	styles.ForegroundColor = "#ffffff"
	styles.BackgroundOpacity = 0 // only text pixels

	dst := newSurface()
	bounds, err := Draw(dst, "O", styles, testWidth, testHeight)
	if err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	foundStroke := false
	for y := int(bounds.Y); y < int(bounds.Y+bounds.Height); y++ {
		for x := int(bounds.X); x < int(bounds.X+bounds.Width); x++ {
			c := dst.RGBAAt(x, y)
			if c.R > 200 && c.G < 50 && c.B < 50 {
				foundStroke = true
			}
		}
	}
	if !foundStroke {
		t.Error("outline effect painted no stroke-colored pixels")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		opacity float64
		r, g, b uint8
		a       uint8
	}{
		{"#ffffff", 1, 255, 255, 255, 255},
		{"#000000", 0.5, 0, 0, 0, 128},
		{"#ff8800", 1, 255, 136, 0, 255},
		{"#f80", 1, 255, 136, 0, 255},
		{"garbage", 1, 255, 255, 255, 255},
	}

	for _, tt := range tests {
		c := parseHexColor(tt.in, tt.opacity)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
			t.Errorf("parseHexColor(%q, %v): got %+v", tt.in, tt.opacity, c)
		}
	}
}
