package render

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"capline/internal/style"
)

// Draw composites caption text onto dst and returns the caption box
// for hit-testing. dst must cover the full surface (width x height in
// source-resolution pixels).
//
// The routine is deterministic: all paint parameters are derived from
// the arguments on every call, so successive calls never bleed shadow
// or stroke state into each other.
func Draw(dst *image.RGBA, text string, styles style.Options, width, height float64) (Bounds, error) {
	if strings.TrimSpace(text) == "" {
		return Bounds{}, nil
	}

	l, err := Measure(text, styles, width, height)
	if err != nil {
		return Bounds{}, err
	}

	face, err := bank.face(l.FontSize, styles.FontWeight)
	if err != nil {
		return Bounds{}, err
	}

	fillRoundedRect(dst, l.Box, styles.BorderRadius,
		parseHexColor(styles.BackgroundColor, styles.BackgroundOpacity))

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	interiorTop := l.Box.Y + l.Padding

	fg := parseHexColor(styles.ForegroundColor, styles.ForegroundOpacity)

	for i, line := range l.Lines {
		x := lineX(l, styles.Align, i)
		baseline := interiorTop + float64(i)*l.LineHeight +
			(l.LineHeight-l.FontSize)/2 + ascent

		switch styles.Effect {
		case style.EffectShadow:
			drawShadow(dst, face, line, x, baseline, styles)
		case style.EffectOutline:
			drawOutline(dst, face, line, x, baseline, styles)
		}

		drawString(dst, face, line, x, baseline, fg)
	}

	return l.Box, nil
}

// drawShadow paints offset translucent passes of the line. The blur
// radius is approximated by a ring of low-alpha draws around the
// offset point; the box itself gets no shadow.
func drawShadow(dst *image.RGBA, face font.Face, line string, x, baseline float64, styles style.Options) {
	base := parseHexColor(styles.ShadowColor, 1.0)
	ox := styles.ShadowOffsetX
	oy := styles.ShadowOffsetY
	blur := styles.ShadowBlur

	if blur <= 0 {
		drawString(dst, face, line, x+ox, baseline+oy, base)
		return
	}

	ring := []struct{ dx, dy float64 }{
		{0, 0},
		{blur / 2, 0}, {-blur / 2, 0}, {0, blur / 2}, {0, -blur / 2},
		{blur, 0}, {-blur, 0}, {0, blur}, {0, -blur},
	}
	soft := base
	soft.A = uint8(int(base.A) / 3)
	for _, r := range ring {
		drawString(dst, face, line, x+ox+r.dx, baseline+oy+r.dy, soft)
	}
}

// drawOutline strokes the line by repeating it in the stroke color at
// the eight surrounding offsets before the fill pass.
func drawOutline(dst *image.RGBA, face font.Face, line string, x, baseline float64, styles style.Options) {
	stroke := parseHexColor(styles.StrokeColor, 1.0)
	w := styles.StrokeWidth
	if w <= 0 {
		return
	}
	offsets := []struct{ dx, dy float64 }{
		{-w, -w}, {0, -w}, {w, -w},
		{-w, 0}, {w, 0},
		{-w, w}, {0, w}, {w, w},
	}
	for _, o := range offsets {
		drawString(dst, face, line, x+o.dx, baseline+o.dy, stroke)
	}
}

func drawString(dst *image.RGBA, face font.Face, s string, x, baseline float64, c color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(baseline * 64),
		},
	}
	d.DrawString(s)
}

// fillRoundedRect fills b on dst with c, rounding corners by radius.
func fillRoundedRect(dst *image.RGBA, b Bounds, radius float64, c color.NRGBA) {
	rect := image.Rect(
		int(b.X), int(b.Y),
		int(b.X+b.Width+0.5), int(b.Y+b.Height+0.5),
	)
	mask := &roundedRectMask{rect: rect, radius: radius}
	draw.DrawMask(dst, rect, image.NewUniform(c), image.Point{},
		mask, rect.Min, draw.Over)
}

// roundedRectMask is an alpha mask that is opaque inside a rounded
// rectangle and transparent in the corner cutouts.
type roundedRectMask struct {
	rect   image.Rectangle
	radius float64
}

func (m *roundedRectMask) ColorModel() color.Model { return color.AlphaModel }
func (m *roundedRectMask) Bounds() image.Rectangle { return m.rect }

func (m *roundedRectMask) At(x, y int) color.Color {
	r := m.radius
	if r <= 0 {
		return color.Alpha{A: 0xff}
	}

	fx := float64(x) + 0.5
	fy := float64(y) + 0.5
	left := float64(m.rect.Min.X) + r
	right := float64(m.rect.Max.X) - r
	top := float64(m.rect.Min.Y) + r
	bottom := float64(m.rect.Max.Y) - r

	var cx, cy float64
	switch {
	case fx < left && fy < top:
		cx, cy = left, top
	case fx > right && fy < top:
		cx, cy = right, top
	case fx < left && fy > bottom:
		cx, cy = left, bottom
	case fx > right && fy > bottom:
		cx, cy = right, bottom
	default:
		return color.Alpha{A: 0xff}
	}

	dx := fx - cx
	dy := fy - cy
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{A: 0}
}

// parseHexColor parses "#rrggbb" (or "#rgb") applying opacity in
// [0, 1]. Unparseable input falls back to opaque white so a bad style
// value degrades visibly instead of crashing.
func parseHexColor(s string, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	alpha := uint8(opacity*255 + 0.5)

	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha}
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: alpha}
	}

	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: alpha,
	}
}
